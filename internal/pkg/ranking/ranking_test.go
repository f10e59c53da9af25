package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestHotScoreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	created := baseTime.Add(-6 * time.Hour)

	a := HotScore(cfg, 42, 3, created, baseTime)
	b := HotScore(cfg, 42, 3, created, baseTime)
	assert.Equal(t, a, b)
}

func TestHotScoreMonotonicInScore(t *testing.T) {
	cfg := DefaultConfig()
	created := baseTime.Add(-3 * time.Hour)

	prev := HotScore(cfg, 0, 0, created, baseTime)
	for score := 1; score <= 200; score++ {
		cur := HotScore(cfg, score, 0, created, baseTime)
		assert.GreaterOrEqual(t, cur, prev, "score %d", score)
		prev = cur
	}
}

func TestHotScoreDecaysWithAge(t *testing.T) {
	cfg := DefaultConfig()

	young := HotScore(cfg, 50, 0, baseTime.Add(-1*time.Hour), baseTime)
	old := HotScore(cfg, 50, 0, baseTime.Add(-48*time.Hour), baseTime)
	assert.Greater(t, young, old)
}

func TestHotScoreDownvotesLowerScore(t *testing.T) {
	cfg := DefaultConfig()
	created := baseTime.Add(-2 * time.Hour)

	clean := HotScore(cfg, 20, 0, created, baseTime)
	punished := HotScore(cfg, 20, 10, created, baseTime)
	assert.Greater(t, clean, punished)
}

func TestHotScoreNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	created := baseTime.Add(-5 * time.Hour)

	got := HotScore(cfg, 1, 100, created, baseTime)
	assert.GreaterOrEqual(t, got, 0.0)

	future := HotScore(cfg, 10, 0, baseTime.Add(time.Hour), baseTime)
	assert.GreaterOrEqual(t, future, 0.0)
}

func TestTrendingScoreDecaysFasterThanHot(t *testing.T) {
	cfg := DefaultConfig()
	at := baseTime.Add(-24 * time.Hour)

	hot := HotScore(cfg, 50, 0, at, baseTime)
	trending := TrendingScore(cfg, 50, at, baseTime)
	assert.Greater(t, hot, trending)
}

func TestTrendingScoreRecentActivityWins(t *testing.T) {
	cfg := DefaultConfig()

	recent := TrendingScore(cfg, 10, baseTime.Add(-1*time.Hour), baseTime)
	stale := TrendingScore(cfg, 10, baseTime.Add(-72*time.Hour), baseTime)
	assert.Greater(t, recent, stale)
}
