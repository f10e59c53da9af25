package model

import (
	"time"
)

type Post struct {
	ID               uint64     `gorm:"primaryKey"`
	SphereID         uint64     `gorm:"not null;index:idx_sphere_id" json:"sphere_id"`
	SatelliteID      *uint64    `gorm:"index:idx_satellite_id" json:"satellite_id"`
	UserID           uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Content          string     `gorm:"type:text;not null" json:"content"`
	Score            int        `gorm:"not null;default:0" json:"score"`
	ScoreMinus       int        `gorm:"not null;default:0" json:"score_minus"`
	RecommendedScore float64    `gorm:"not null;default:0" json:"recommended_score"`
	TrendingScore    float64    `gorm:"not null;default:0" json:"trending_score"`
	ScoringTimestamp time.Time  `gorm:"not null" json:"scoring_timestamp"`
	NumComments      int        `gorm:"not null;default:0" json:"num_comments"`
	IsPinned         bool       `gorm:"type:tinyint(1);not null;default:0" json:"is_pinned"`
	EditTimestamp    *time.Time `json:"edit_timestamp"`
	DeleteTimestamp  *time.Time `json:"delete_timestamp"`
	ModeratorID      *uint64    `json:"moderator_id"`
	ModerationText   *string    `gorm:"type:varchar(500)" json:"moderation_text"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// IsActive 帖子未被作者删除且未被版主下架
func (p *Post) IsActive() bool {
	return p.DeleteTimestamp == nil && p.ModeratorID == nil
}
