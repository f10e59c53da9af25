package repository

import (
	"ShareSphere/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SphereRepo interface {
	CreateSphere(ctx context.Context, sphere *model.Sphere, creatorRole *model.SphereRole) error
	GetSphere(ctx context.Context, id uint64) (*model.Sphere, error)
	GetSphereByName(ctx context.Context, name string) (*model.Sphere, error)
	ListSpheres(ctx context.Context, limit, offset int) ([]*model.Sphere, error)
	CreateSatellite(ctx context.Context, satellite *model.Satellite) error
	GetSatellite(ctx context.Context, id uint64) (*model.Satellite, error)
	ListSatellites(ctx context.Context, sphereID uint64) ([]*model.Satellite, error)
	GetRole(ctx context.Context, sphereID, userID uint64) (*model.SphereRole, error)
	AddRole(ctx context.Context, role *model.SphereRole) error
}

type SphereRepoImpl struct {
	db *gorm.DB
}

func NewSphereRepository(db *gorm.DB) SphereRepo {
	return &SphereRepoImpl{
		db: db,
	}
}

// CreateSphere 建社区并同时授予创建者角色
func (s SphereRepoImpl) CreateSphere(ctx context.Context, sphere *model.Sphere, creatorRole *model.SphereRole) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sphere).Error; err != nil {
			return err
		}
		creatorRole.SphereID = sphere.ID
		return tx.Create(creatorRole).Error
	})
}

func (s SphereRepoImpl) GetSphere(ctx context.Context, id uint64) (*model.Sphere, error) {
	var sphere model.Sphere
	err := s.db.WithContext(ctx).First(&sphere, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sphere, nil
}

func (s SphereRepoImpl) GetSphereByName(ctx context.Context, name string) (*model.Sphere, error) {
	var sphere model.Sphere
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&sphere).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sphere, nil
}

func (s SphereRepoImpl) ListSpheres(ctx context.Context, limit, offset int) ([]*model.Sphere, error) {
	var spheres []*model.Sphere
	err := s.db.WithContext(ctx).
		Where("status = ?", 0).
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&spheres).Error
	if err != nil {
		return nil, err
	}
	return spheres, nil
}

func (s SphereRepoImpl) CreateSatellite(ctx context.Context, satellite *model.Satellite) error {
	return s.db.WithContext(ctx).Create(satellite).Error
}

func (s SphereRepoImpl) GetSatellite(ctx context.Context, id uint64) (*model.Satellite, error) {
	var satellite model.Satellite
	err := s.db.WithContext(ctx).First(&satellite, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &satellite, nil
}

func (s SphereRepoImpl) ListSatellites(ctx context.Context, sphereID uint64) ([]*model.Satellite, error) {
	var satellites []*model.Satellite
	err := s.db.WithContext(ctx).
		Where("sphere_id = ?", sphereID).
		Order("id ASC").
		Find(&satellites).Error
	if err != nil {
		return nil, err
	}
	return satellites, nil
}

func (s SphereRepoImpl) GetRole(ctx context.Context, sphereID, userID uint64) (*model.SphereRole, error) {
	var role model.SphereRole
	err := s.db.WithContext(ctx).
		Where("sphere_id = ? AND user_id = ?", sphereID, userID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (s SphereRepoImpl) AddRole(ctx context.Context, role *model.SphereRole) error {
	return s.db.WithContext(ctx).Create(role).Error
}
