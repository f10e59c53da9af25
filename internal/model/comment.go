package model

import (
	"time"
)

type Comment struct {
	ID              uint64     `gorm:"primaryKey"`
	PostID          uint64     `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID          uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	ParentID        *uint64    `gorm:"index:idx_parent_id" json:"parent_id"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	Score           int        `gorm:"not null;default:0" json:"score"`
	ScoreMinus      int        `gorm:"not null;default:0" json:"score_minus"`
	IsPinned        bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_pinned"`
	EditTimestamp   *time.Time `json:"edit_timestamp"`
	DeleteTimestamp *time.Time `json:"delete_timestamp"`
	ModeratorID     *uint64    `json:"moderator_id"`
	ModerationText  *string    `gorm:"type:varchar(500)" json:"moderation_text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsActive 评论未被作者删除且未被版主下架
func (c *Comment) IsActive() bool {
	return c.DeleteTimestamp == nil && c.ModeratorID == nil
}
