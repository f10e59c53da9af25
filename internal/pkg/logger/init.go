package logger

import (
	"ShareSphere/internal/api/config"
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

func InitLogger() {
	level := log.LevelInfo
	if config.Cfg.Log.Level == "debug" {
		level = log.LevelDebug
	}

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: level})
	LogWriter = os.Stdout

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
