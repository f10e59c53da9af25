package repository

import (
	"ShareSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type BanRepo interface {
	CreateBan(ctx context.Context, ban *model.UserBan) error
	GetActiveBan(ctx context.Context, userID, sphereID uint64, now time.Time) (*model.UserBan, error)
	ListBans(ctx context.Context, sphereID uint64, limit, offset int) ([]*model.UserBan, error)
	RemoveBan(ctx context.Context, id uint64) error
}

type BanRepoImpl struct {
	db *gorm.DB
}

func NewBanRepository(db *gorm.DB) BanRepo {
	return &BanRepoImpl{
		db: db,
	}
}

func (s BanRepoImpl) CreateBan(ctx context.Context, ban *model.UserBan) error {
	return s.db.WithContext(ctx).Create(ban).Error
}

func (s BanRepoImpl) GetActiveBan(ctx context.Context, userID, sphereID uint64, now time.Time) (*model.UserBan, error) {
	var ban model.UserBan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND sphere_id = ?", userID, sphereID).
		Where("until IS NULL OR until > ?", now).
		Order("id DESC").
		First(&ban).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ban, nil
}

func (s BanRepoImpl) ListBans(ctx context.Context, sphereID uint64, limit, offset int) ([]*model.UserBan, error) {
	var bans []*model.UserBan
	err := s.db.WithContext(ctx).
		Where("sphere_id = ?", sphereID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&bans).Error
	if err != nil {
		return nil, err
	}
	return bans, nil
}

func (s BanRepoImpl) RemoveBan(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.UserBan{}, id).Error
}
