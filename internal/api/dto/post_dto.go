package dto

import "time"

// PostCreateDTO 发帖请求
type PostCreateDTO struct {
	SphereID    uint64  `json:"sphere_id" binding:"required"`
	SatelliteID *uint64 `json:"satellite_id"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Content     string  `json:"content" binding:"required,min=1,max=20000"`
}

// PostUpdateDTO 编辑帖子请求
type PostUpdateDTO struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1,max=20000"`
}

// PostDTO 帖子
type PostDTO struct {
	ID               uint64     `json:"id"`
	SphereID         uint64     `json:"sphere_id"`
	SatelliteID      *uint64    `json:"satellite_id,omitempty"`
	UserID           uint64     `json:"user_id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Score            int        `json:"score"`
	RecommendedScore float64    `json:"recommended_score"`
	TrendingScore    float64    `json:"trending_score"`
	NumComments      int        `json:"num_comments"`
	IsPinned         bool       `json:"is_pinned"`
	EditTimestamp    *time.Time `json:"edit_timestamp,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PostDetailDTO 帖子详情，附带当前用户投票状态
type PostDetailDTO struct {
	PostDTO
	CommentCount int64   `json:"comment_count"`
	ViewerVoteID *uint64 `json:"viewer_vote_id,omitempty"`
	ViewerVote   int8    `json:"viewer_vote"`
}
