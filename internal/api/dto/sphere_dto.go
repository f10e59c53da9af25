package dto

import "time"

// SphereCreateDTO 创建星球请求
type SphereCreateDTO struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"max=500"`
}

// SphereDTO 星球
type SphereDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   uint64    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// SatelliteCreateDTO 创建子板块请求
type SatelliteCreateDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description" binding:"max=500"`
}

// SatelliteDTO 子板块
type SatelliteDTO struct {
	ID          uint64 `json:"id"`
	SphereID    uint64 `json:"sphere_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
