package cron

import (
	"ShareSphere/internal/api/config"
	"ShareSphere/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	scoreSweepJob *job.ScoreSweepJob
}

func NewCronManager(scoreSweepJob *job.ScoreSweepJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		scoreSweepJob: scoreSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	spec := config.Cfg.Ranking.SweepSpec
	if spec == "" {
		spec = "@every 5m"
	}
	if _, err := s.engine.AddJob(spec, s.scoreSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
