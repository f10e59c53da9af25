package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户已存在")
	ErrUserBan           = errors.New("用户已被封禁")
	ErrUserBanSelf       = errors.New("不能封禁自己")
	ErrUserBanModerator  = errors.New("不能封禁版主")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrSphereNotFound    = errors.New("星球不存在")
	ErrSphereExist       = errors.New("星球已存在")
	ErrSatelliteNotFound = errors.New("子板块不存在")
	ErrSatelliteExist    = errors.New("子板块已存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrVoteConflict      = errors.New("投票状态已变化，请刷新后重试")
	ErrSortInvalid       = errors.New("未知的排序方式")
	ErrNotAuthor         = errors.New("只能操作自己的内容")
	ErrNotModerator      = errors.New("需要版主权限")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrUserBan:           Forbidden,
	ErrUserBanSelf:       BadRequest,
	ErrUserBanModerator:  BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrSphereNotFound:    NotFound,
	ErrSphereExist:       BadRequest,
	ErrSatelliteNotFound: NotFound,
	ErrSatelliteExist:    BadRequest,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrVoteConflict:      Conflict,
	ErrSortInvalid:       BadRequest,
	ErrNotAuthor:         Forbidden,
	ErrNotModerator:      Forbidden,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
