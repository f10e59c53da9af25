package dto

// VoteReq 投票请求，VoteID 为客户端已知的现有投票行
type VoteReq struct {
	PostID    uint64  `json:"post_id" binding:"required"`
	CommentID *uint64 `json:"comment_id"`
	Direction string  `json:"direction" binding:"required,oneof=up down"`
	VoteID    *uint64 `json:"vote_id"`
}

// VoteDTO 投票结果，投票被取消时 VoteID 为空
type VoteDTO struct {
	VoteID *uint64 `json:"vote_id"`
	Value  int8    `json:"value"`
	Score  int     `json:"score"`
}
