package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/redis"
	"ShareSphere/internal/repository"
	"context"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type SphereService interface {
	CreateSphere(ctx context.Context, userID uint64, req *dto.SphereCreateDTO) (*dto.SphereDTO, error)
	GetSphereByName(ctx context.Context, name string) (*dto.SphereDTO, error)
	ListSpheres(ctx context.Context, page, pageSize int) ([]*dto.SphereDTO, error)
	CreateSatellite(ctx context.Context, userID, sphereID uint64, req *dto.SatelliteCreateDTO) (*dto.SatelliteDTO, error)
	ListSatellites(ctx context.Context, sphereID uint64) ([]*dto.SatelliteDTO, error)
}

type SphereServiceImpl struct {
	sphereRepo repository.SphereRepo
	moderation ModerationService
}

func NewSphereService(sphereRepo repository.SphereRepo, moderation ModerationService) SphereService {
	return &SphereServiceImpl{
		sphereRepo: sphereRepo,
		moderation: moderation,
	}
}

// CreateSphere 建社区，创建者自动成为版主
func (s *SphereServiceImpl) CreateSphere(ctx context.Context, userID uint64, req *dto.SphereCreateDTO) (*dto.SphereDTO, error) {
	existing, err := s.sphereRepo.GetSphereByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSphereExist
	}

	sphere := &model.Sphere{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   userID,
	}
	role := &model.SphereRole{
		UserID: userID,
		Level:  1,
	}
	if err = s.sphereRepo.CreateSphere(ctx, sphere, role); err != nil {
		return nil, err
	}

	sphereDTO := &dto.SphereDTO{}
	if err = copier.Copy(sphereDTO, sphere); err != nil {
		return nil, err
	}
	return sphereDTO, nil
}

func (s *SphereServiceImpl) GetSphereByName(ctx context.Context, name string) (*dto.SphereDTO, error) {
	cacheKey := consts.SphereInfoKey + name
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		sphereDTO := &dto.SphereDTO{}
		if err = json.Unmarshal([]byte(cached), sphereDTO); err == nil {
			return sphereDTO, nil
		}
	}

	sphere, err := s.sphereRepo.GetSphereByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if sphere == nil {
		return nil, ErrSphereNotFound
	}
	sphereDTO := &dto.SphereDTO{}
	if err = copier.Copy(sphereDTO, sphere); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sphereDTO); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, string(data), consts.SphereInfoCacheTTL)
	}
	return sphereDTO, nil
}

func (s *SphereServiceImpl) ListSpheres(ctx context.Context, page, pageSize int) ([]*dto.SphereDTO, error) {
	spheres, err := s.sphereRepo.ListSpheres(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	sphereDTOs := make([]*dto.SphereDTO, 0, len(spheres))
	for _, sphere := range spheres {
		sphereDTO := &dto.SphereDTO{}
		if err = copier.Copy(sphereDTO, sphere); err != nil {
			return nil, err
		}
		sphereDTOs = append(sphereDTOs, sphereDTO)
	}
	return sphereDTOs, nil
}

func (s *SphereServiceImpl) CreateSatellite(ctx context.Context, userID, sphereID uint64, req *dto.SatelliteCreateDTO) (*dto.SatelliteDTO, error) {
	sphere, err := s.sphereRepo.GetSphere(ctx, sphereID)
	if err != nil {
		return nil, err
	}
	if sphere == nil {
		return nil, ErrSphereNotFound
	}
	if err = s.moderation.RequireModerator(ctx, userID, sphereID); err != nil {
		return nil, err
	}

	satellites, err := s.sphereRepo.ListSatellites(ctx, sphereID)
	if err != nil {
		return nil, err
	}
	for _, existing := range satellites {
		if existing.Name == req.Name {
			return nil, ErrSatelliteExist
		}
	}

	satellite := &model.Satellite{
		SphereID:    sphereID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err = s.sphereRepo.CreateSatellite(ctx, satellite); err != nil {
		return nil, err
	}

	satelliteDTO := &dto.SatelliteDTO{}
	if err = copier.Copy(satelliteDTO, satellite); err != nil {
		return nil, err
	}
	return satelliteDTO, nil
}

func (s *SphereServiceImpl) ListSatellites(ctx context.Context, sphereID uint64) ([]*dto.SatelliteDTO, error) {
	sphere, err := s.sphereRepo.GetSphere(ctx, sphereID)
	if err != nil {
		return nil, err
	}
	if sphere == nil {
		return nil, ErrSphereNotFound
	}
	satellites, err := s.sphereRepo.ListSatellites(ctx, sphereID)
	if err != nil {
		return nil, err
	}
	satelliteDTOs := make([]*dto.SatelliteDTO, 0, len(satellites))
	for _, satellite := range satellites {
		satelliteDTO := &dto.SatelliteDTO{}
		if err = copier.Copy(satelliteDTO, satellite); err != nil {
			return nil, err
		}
		satelliteDTOs = append(satelliteDTOs, satelliteDTO)
	}
	return satelliteDTOs, nil
}
