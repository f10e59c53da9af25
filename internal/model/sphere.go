package model

import (
	"time"
)

// Sphere 主题社区，帖子归属的顶层容器
type Sphere struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex:idx_sphere_name"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	CreatorID   uint64 `gorm:"not null;index:idx_creator_id" json:"creator_id"`
	Status      int8   `gorm:"not null;default:0" json:"status"` // 0:正常, 1:已归档
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Sphere) TableName() string {
	return "spheres"
}

// Satellite 社区下的子板块，帖子可选归属
type Satellite struct {
	ID          uint64 `gorm:"primaryKey"`
	SphereID    uint64 `gorm:"not null;uniqueIndex:idx_sphere_satellite,priority:1" json:"sphere_id"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex:idx_sphere_satellite,priority:2" json:"name"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Satellite) TableName() string {
	return "satellites"
}

// SphereRole 社区内的版主关系
type SphereRole struct {
	ID        uint64 `gorm:"primaryKey"`
	SphereID  uint64 `gorm:"not null;uniqueIndex:idx_sphere_user,priority:1" json:"sphere_id"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_sphere_user,priority:2" json:"user_id"`
	Level     int8   `gorm:"not null;default:0" json:"level"` // 0:版主, 1:创建者
	CreatedAt time.Time
}

func (SphereRole) TableName() string {
	return "sphere_roles"
}
