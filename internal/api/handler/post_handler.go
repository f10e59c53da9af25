package handler

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/response"
	"ShareSphere/internal/pkg/util"
	"ShareSphere/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// CreatePost 发帖
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.PostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost 帖子详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	post, err := s.postSvc.GetPostDetail(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// ListPosts 某星球下的帖子列表
func (s *PostHandler) ListPosts(c *gin.Context) {
	sphereName := c.Param("sphere")
	sortType := model.PostSortType(c.DefaultQuery("sort", string(model.PostSortHot)))
	page, pageSize := util.ParsePage(c, consts.DefaultPageSize, consts.MaxPageSize)

	var satelliteID *uint64
	if raw := c.Query("satellite_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		satelliteID = &id
	}

	posts, err := s.postSvc.ListPosts(c.Request.Context(), sphereName, satelliteID, sortType, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// UpdatePost 编辑帖子
func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.PostUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除帖子
func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
