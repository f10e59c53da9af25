package model

import (
	"time"
)

// VoteValue 三态投票值
type VoteValue int8

const (
	VoteDown VoteValue = -1
	VoteNone VoteValue = 0
	VoteUp   VoteValue = 1
)

// Vote 一个用户对一个目标（帖子或评论）至多一行
type Vote struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_target,priority:1" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_target,priority:2" json:"post_id"`
	CommentID *uint64   `gorm:"uniqueIndex:idx_user_target,priority:3" json:"comment_id"`
	Value     VoteValue `gorm:"type:tinyint;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vote) TableName() string {
	return "votes"
}
