package model

import (
	"time"
)

// UserBan 社区内封禁记录，Until 为空表示永久
type UserBan struct {
	ID          uint64     `gorm:"primaryKey"`
	UserID      uint64     `gorm:"not null;index:idx_ban_user,priority:1" json:"user_id"`
	SphereID    uint64     `gorm:"not null;index:idx_ban_user,priority:2" json:"sphere_id"`
	ModeratorID uint64     `gorm:"not null" json:"moderator_id"`
	Reason      string     `gorm:"type:varchar(500)" json:"reason"`
	Until       *time.Time `json:"until"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (UserBan) TableName() string {
	return "user_bans"
}

// Active 封禁在给定时刻是否仍然生效
func (b *UserBan) Active(now time.Time) bool {
	return b.Until == nil || b.Until.After(now)
}

// BanDurationKind 封禁时长类别
type BanDurationKind int8

const (
	BanDurationNone BanDurationKind = iota
	BanDurationTimed
	BanDurationPermanent
)

// BanDuration 显式区分不封禁、限时封禁与永久封禁
type BanDuration struct {
	Kind BanDurationKind
	Days int
}

// Until 计算封禁截止时刻，永久封禁返回 nil
func (d BanDuration) Until(now time.Time) *time.Time {
	if d.Kind != BanDurationTimed {
		return nil
	}
	t := now.AddDate(0, 0, d.Days)
	return &t
}
