package handler

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/response"
	"ShareSphere/internal/pkg/util"
	"ShareSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationSvc service.ModerationService
}

func NewModerationHandler(moderationSvc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationSvc: moderationSvc,
	}
}

// BanUser 在星球内封禁用户
func (s *ModerationHandler) BanUser(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	var req dto.BanUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	ban, err := s.moderationSvc.BanUser(c.Request.Context(), moderatorID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ban)
}

// UnbanUser 解除封禁
func (s *ModerationHandler) UnbanUser(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	sphereID, err := util.ParseUint64Param(c, "sphere_id")
	if err != nil || sphereID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	banID, err := util.ParseUint64Param(c, "ban_id")
	if err != nil || banID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.moderationSvc.UnbanUser(c.Request.Context(), moderatorID, sphereID, banID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListBans 星球内的封禁记录
func (s *ModerationHandler) ListBans(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	sphereID, err := util.ParseUint64Param(c, "sphere_id")
	if err != nil || sphereID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, pageSize := util.ParsePage(c, consts.DefaultPageSize, consts.MaxPageSize)

	bans, err := s.moderationSvc.ListBans(c.Request.Context(), moderatorID, sphereID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bans)
}

// ModeratePost 下架帖子
func (s *ModerationHandler) ModeratePost(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ModerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.moderationSvc.ModeratePost(c.Request.Context(), moderatorID, postID, req.Message); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ModerateComment 下架评论
func (s *ModerationHandler) ModerateComment(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	commentID, err := util.ParseUint64Param(c, "comment_id")
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ModerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.moderationSvc.ModerateComment(c.Request.Context(), moderatorID, commentID, req.Message); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PinPost 置顶/取消置顶帖子
func (s *ModerationHandler) PinPost(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.PinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.moderationSvc.PinPost(c.Request.Context(), moderatorID, postID, req.Pinned); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PinComment 置顶/取消置顶评论
func (s *ModerationHandler) PinComment(c *gin.Context) {
	moderatorID := c.GetUint64("user_id")
	commentID, err := util.ParseUint64Param(c, "comment_id")
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.PinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.moderationSvc.PinComment(c.Request.Context(), moderatorID, commentID, req.Pinned); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
