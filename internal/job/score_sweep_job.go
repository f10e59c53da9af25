package job

import (
	"ShareSphere/internal/api/config"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/logger"
	"ShareSphere/internal/pkg/ranking"
	"ShareSphere/internal/pkg/redis"
	"ShareSphere/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ScoreSweepJob 周期性重算所有可见帖子的推荐分与趋势分
type ScoreSweepJob struct {
	postRepo repository.PostRepo
}

func NewScoreSweepJob(postRepo repository.PostRepo) *ScoreSweepJob {
	return &ScoreSweepJob{
		postRepo: postRepo,
	}
}

func (s *ScoreSweepJob) Run() {
	traceID := "job-score-sweep-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.RankSweepLock, lockValue, consts.SweepLockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "score sweep lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "score sweep already running, skipped")
		return
	}
	defer redis.UnLock(ctx, consts.RankSweepLock, lockValue)

	if err := s.sweep(ctx); err != nil {
		log.ErrorContext(ctx, "score sweep failed, will retry next interval", "err", err)
		return
	}
}

func (s *ScoreSweepJob) sweep(ctx context.Context) error {
	cfg := sweepConfig()
	batchSize := config.Cfg.Ranking.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	now := time.Now()
	start := now
	var afterID uint64
	var updated, failed int

	for {
		posts, err := s.postRepo.ListActiveForScoring(ctx, afterID, batchSize)
		if err != nil {
			return errors.Wrap(err, "list posts for scoring")
		}
		if len(posts) == 0 {
			break
		}

		for _, post := range posts {
			recommended := ranking.HotScore(cfg, post.Score, post.ScoreMinus, post.CreatedAt, now)
			trending := ranking.TrendingScore(cfg, post.Score, post.ScoringTimestamp, now)

			if err := s.postRepo.UpdateDerivedScores(ctx, post.ID, recommended, trending); err != nil {
				failed++
				log.ErrorContext(ctx, "update derived scores failed", "post_id", post.ID, "err", err)
				continue
			}
			updated++
		}
		afterID = posts[len(posts)-1].ID
	}

	log.InfoContext(ctx, "score sweep finished",
		"updated", updated,
		"failed", failed,
		"latency", time.Since(start),
	)
	return nil
}

func sweepConfig() ranking.Config {
	cfg := ranking.DefaultConfig()
	rc := config.Cfg.Ranking
	if rc.Gravity > 0 {
		cfg.Gravity = rc.Gravity
	}
	if rc.TrendingGravity > 0 {
		cfg.TrendingGravity = rc.TrendingGravity
	}
	if rc.WeightMinus > 0 {
		cfg.WeightMinus = rc.WeightMinus
	}
	if rc.ScaleFactor > 0 {
		cfg.ScaleFactor = rc.ScaleFactor
	}
	return cfg
}
