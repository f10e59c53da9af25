package dto

import "time"

// CommentCreateDTO 发表评论请求，ParentID 为空表示根评论
type CommentCreateDTO struct {
	PostID   uint64  `json:"post_id" binding:"required"`
	ParentID *uint64 `json:"parent_id"`
	Content  string  `json:"content" binding:"required,min=1,max=10000"`
}

// CommentUpdateDTO 编辑评论请求
type CommentUpdateDTO struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

// CommentNodeDTO 评论树节点
type CommentNodeDTO struct {
	ID            uint64     `json:"id"`
	PostID        uint64     `json:"post_id"`
	UserID        uint64     `json:"user_id"`
	ParentID      *uint64    `json:"parent_id,omitempty"`
	Content       string     `json:"content"`
	Score         int        `json:"score"`
	IsPinned      bool       `json:"is_pinned"`
	EditTimestamp *time.Time `json:"edit_timestamp,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ViewerVoteID  *uint64    `json:"viewer_vote_id,omitempty"`
	ViewerVote    int8       `json:"viewer_vote"`

	Children []*CommentNodeDTO `json:"children"`
}
