package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 贯穿请求与后台任务的链路标识键
const TraceIDKey = "trace_id"

// ContextHandler 把 ctx 中的 trace_id 附加到每条日志记录
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, r)
}
