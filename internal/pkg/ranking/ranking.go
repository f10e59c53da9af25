package ranking

import (
	"math"
	"time"
)

// Config 分数衰减参数
type Config struct {
	Gravity         float64
	TrendingGravity float64
	WeightMinus     float64
	ScaleFactor     float64
}

// DefaultConfig 默认衰减参数
func DefaultConfig() Config {
	return Config{
		Gravity:         1.5,
		TrendingGravity: 2.5,
		WeightMinus:     0.5,
		ScaleFactor:     100,
	}
}

// HotScore 按发帖时间衰减的推荐分数
func HotScore(cfg Config, score, scoreMinus int, createdAt, now time.Time) float64 {
	weighted := float64(score) - cfg.WeightMinus*float64(scoreMinus)
	if weighted < 0 {
		weighted = 0
	}

	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	return math.Log10(weighted+1) * cfg.ScaleFactor / math.Pow(hours+2, cfg.Gravity)
}

// TrendingScore 按最近投票活动时间衰减的趋势分数
func TrendingScore(cfg Config, score int, scoredAt, now time.Time) float64 {
	weighted := float64(score)
	if weighted < 0 {
		weighted = 0
	}

	hours := now.Sub(scoredAt).Hours()
	if hours < 0 {
		hours = 0
	}

	return math.Log10(weighted+1) * cfg.ScaleFactor / math.Pow(hours+2, cfg.TrendingGravity)
}
