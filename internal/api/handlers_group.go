package api

import "ShareSphere/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	SphereHandler     *handler.SphereHandler
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	VoteHandler       *handler.VoteHandler
	ModerationHandler *handler.ModerationHandler
}
