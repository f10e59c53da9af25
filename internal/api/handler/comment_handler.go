package handler

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/response"
	"ShareSphere/internal/pkg/util"
	"ShareSphere/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// CreateComment 发表评论
func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// GetCommentTree 帖子的评论树
func (s *CommentHandler) GetCommentTree(c *gin.Context) {
	postID, err := util.ParseUint64Param(c, "post_id")
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	sortType := model.CommentSortType(c.DefaultQuery("sort", string(model.CommentSortBest)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	tree, err := s.commentSvc.GetCommentTree(c.Request.Context(), userID, postID, sortType, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tree)
}

// UpdateComment 编辑评论
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := util.ParseUint64Param(c, "comment_id")
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := util.ParseUint64Param(c, "comment_id")
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
