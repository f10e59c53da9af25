package dto

import "time"

// BanDurationDTO 封禁时长，kind 为 timed 时 days 必须为正
type BanDurationDTO struct {
	Kind string `json:"kind" binding:"required,oneof=none timed permanent"`
	Days int    `json:"days" binding:"omitempty,min=1,max=3650"`
}

// BanUserReq 封禁用户请求
type BanUserReq struct {
	UserID   uint64         `json:"user_id" binding:"required"`
	SphereID uint64         `json:"sphere_id" binding:"required"`
	Reason   string         `json:"reason" binding:"max=500"`
	Duration BanDurationDTO `json:"duration" binding:"required"`
}

// BanDTO 封禁记录，Until 为空表示永久
type BanDTO struct {
	ID          uint64     `json:"id"`
	UserID      uint64     `json:"user_id"`
	SphereID    uint64     `json:"sphere_id"`
	ModeratorID uint64     `json:"moderator_id"`
	Reason      string     `json:"reason"`
	Until       *time.Time `json:"until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ModerateReq 下架帖子或评论的请求
type ModerateReq struct {
	Message string `json:"message" binding:"required,max=500"`
}

// PinReq 置顶或取消置顶请求
type PinReq struct {
	Pinned bool `json:"pinned"`
}
