package service

import (
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/redis"
	"context"
	"strconv"
)

// PostListCache 帖子热榜缓存
type PostListCache interface {
	InvalidateHotList(ctx context.Context, sphereID uint64) error
}

// CommentCountCache 帖子评论数缓存
type CommentCountCache interface {
	Get(ctx context.Context, postID uint64) (int64, bool, error)
	Set(ctx context.Context, postID uint64, count int64) error
	Add(ctx context.Context, postID uint64, delta int64) error
}

type RedisPostListCache struct{}

func NewPostListCache() PostListCache {
	return &RedisPostListCache{}
}

func (RedisPostListCache) InvalidateHotList(ctx context.Context, sphereID uint64) error {
	return redis.DeleteKey(ctx, consts.PostHotListKey+strconv.FormatUint(sphereID, 10))
}

type RedisCommentCountCache struct{}

func NewCommentCountCache() CommentCountCache {
	return &RedisCommentCountCache{}
}

func (RedisCommentCountCache) Get(ctx context.Context, postID uint64) (int64, bool, error) {
	return redis.GetInt64(ctx, commentCountKey(postID))
}

func (RedisCommentCountCache) Set(ctx context.Context, postID uint64, count int64) error {
	return redis.SetWithExpiration(ctx, commentCountKey(postID), count, consts.CommentCountCacheTTL)
}

func (RedisCommentCountCache) Add(ctx context.Context, postID uint64, delta int64) error {
	return redis.IncrBy(ctx, commentCountKey(postID), delta)
}

func commentCountKey(postID uint64) string {
	return consts.PostCommentCountKey + strconv.FormatUint(postID, 10)
}
