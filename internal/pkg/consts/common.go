package consts

import "time"

// 用户状态
const (
	UserStatusNormal = 0
	UserStatusBanned = 1
)

// 星球状态
const (
	SphereStatusNormal   = 0
	SphereStatusArchived = 1
)

// 分页默认值
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	CommentPageSize = 200
)

// 缓存过期时间
const (
	HotListCacheTTL      = 2 * time.Minute
	SphereInfoCacheTTL   = 10 * time.Minute
	CommentCountCacheTTL = 10 * time.Minute
	TokenBlockTTL        = 24 * time.Hour
	SweepLockTTL         = 4 * time.Minute
)
