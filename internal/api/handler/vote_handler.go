package handler

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/pkg/response"
	"ShareSphere/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
}

func NewVoteHandler(voteSvc service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteSvc: voteSvc,
	}
}

// Vote 对帖子或评论投票
func (s *VoteHandler) Vote(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.voteSvc.Vote(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
