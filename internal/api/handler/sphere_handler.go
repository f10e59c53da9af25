package handler

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/response"
	"ShareSphere/internal/pkg/util"
	"ShareSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type SphereHandler struct {
	sphereSvc service.SphereService
}

func NewSphereHandler(sphereSvc service.SphereService) *SphereHandler {
	return &SphereHandler{
		sphereSvc: sphereSvc,
	}
}

// CreateSphere 创建星球
func (s *SphereHandler) CreateSphere(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.SphereCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sphere, err := s.sphereSvc.CreateSphere(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sphere)
}

// GetSphere 按名称查询星球
func (s *SphereHandler) GetSphere(c *gin.Context) {
	sphere, err := s.sphereSvc.GetSphereByName(c.Request.Context(), c.Param("sphere"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sphere)
}

// ListSpheres 星球列表
func (s *SphereHandler) ListSpheres(c *gin.Context) {
	page, pageSize := util.ParsePage(c, consts.DefaultPageSize, consts.MaxPageSize)

	spheres, err := s.sphereSvc.ListSpheres(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, spheres)
}

// CreateSatellite 创建子板块
func (s *SphereHandler) CreateSatellite(c *gin.Context) {
	sphereID, err := util.ParseUint64Param(c, "sphere_id")
	if err != nil || sphereID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.SatelliteCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	satellite, err := s.sphereSvc.CreateSatellite(c.Request.Context(), userID, sphereID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, satellite)
}

// ListSatellites 子板块列表
func (s *SphereHandler) ListSatellites(c *gin.Context) {
	sphereID, err := util.ParseUint64Param(c, "sphere_id")
	if err != nil || sphereID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	satellites, err := s.sphereSvc.ListSatellites(c.Request.Context(), sphereID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, satellites)
}
