package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts  map[uint64]*model.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*model.Post)}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) UpdateContent(_ context.Context, id uint64, title, content string, editedAt time.Time) error {
	post := f.posts[id]
	post.Title = title
	post.Content = content
	post.EditTimestamp = &editedAt
	return nil
}

func (f *fakePostRepo) SoftDeletePost(_ context.Context, id uint64, deletedAt time.Time) error {
	f.posts[id].DeleteTimestamp = &deletedAt
	return nil
}

func (f *fakePostRepo) SetModerated(_ context.Context, id, moderatorID uint64, message string) error {
	f.posts[id].ModeratorID = &moderatorID
	f.posts[id].ModerationText = &message
	return nil
}

func (f *fakePostRepo) SetPinned(_ context.Context, id uint64, pinned bool) error {
	f.posts[id].IsPinned = pinned
	return nil
}

func (f *fakePostRepo) ListBySphere(_ context.Context, _ uint64, _ *uint64, _ model.PostSortType, _, _ int) ([]*model.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) ListActiveForScoring(_ context.Context, afterID uint64, limit int) ([]*model.Post, error) {
	return nil, nil
}

func (f *fakePostRepo) UpdateDerivedScores(_ context.Context, id uint64, recommended, trending float64) error {
	f.posts[id].RecommendedScore = recommended
	f.posts[id].TrendingScore = trending
	return nil
}

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	rows     []*repository.CommentWithVote
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*model.Comment)}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) UpdateContent(_ context.Context, id uint64, content string, editedAt time.Time) error {
	f.comments[id].Content = content
	f.comments[id].EditTimestamp = &editedAt
	return nil
}

func (f *fakeCommentRepo) SoftDeleteComment(_ context.Context, id uint64, deletedAt time.Time) error {
	f.comments[id].DeleteTimestamp = &deletedAt
	return nil
}

func (f *fakeCommentRepo) SetModerated(_ context.Context, id, moderatorID uint64, message string) error {
	f.comments[id].ModeratorID = &moderatorID
	f.comments[id].ModerationText = &message
	return nil
}

func (f *fakeCommentRepo) SetPinned(_ context.Context, id uint64, pinned bool) error {
	f.comments[id].IsPinned = pinned
	return nil
}

func (f *fakeCommentRepo) GetCommentPage(_ context.Context, _, _ uint64, _, _ int) ([]*repository.CommentWithVote, error) {
	return f.rows, nil
}

func (f *fakeCommentRepo) CountActive(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, comment := range f.comments {
		if comment.PostID == postID && comment.IsActive() {
			count++
		}
	}
	return count, nil
}

type fakeVoteRepo struct {
	votes    map[uint64]*model.Vote
	posts    *fakePostRepo
	comments *fakeCommentRepo
	nextID   uint64
}

func newFakeVoteRepo(posts *fakePostRepo, comments *fakeCommentRepo) *fakeVoteRepo {
	return &fakeVoteRepo{
		votes:    make(map[uint64]*model.Vote),
		posts:    posts,
		comments: comments,
	}
}

func (f *fakeVoteRepo) GetVoteByID(_ context.Context, id uint64) (*model.Vote, error) {
	return f.votes[id], nil
}

func (f *fakeVoteRepo) GetUserVote(_ context.Context, userID, postID uint64, commentID *uint64) (*model.Vote, error) {
	for _, vote := range f.votes {
		if vote.UserID != userID || vote.PostID != postID {
			continue
		}
		if (vote.CommentID == nil) != (commentID == nil) {
			continue
		}
		if commentID != nil && *vote.CommentID != *commentID {
			continue
		}
		return vote, nil
	}
	return nil, nil
}

func (f *fakeVoteRepo) ApplyVoteChange(_ context.Context, change *repository.VoteChange) (*model.Vote, error) {
	var result *model.Vote
	switch {
	case change.Prior == nil:
		f.nextID++
		vote := &model.Vote{
			ID:        f.nextID,
			UserID:    change.UserID,
			PostID:    change.PostID,
			CommentID: change.CommentID,
			Value:     change.NewValue,
		}
		f.votes[vote.ID] = vote
		result = vote
	case change.NewValue == model.VoteNone:
		delete(f.votes, change.Prior.ID)
	default:
		vote := f.votes[change.Prior.ID]
		vote.Value = change.NewValue
		result = vote
	}

	if change.CommentID != nil {
		comment := f.comments.comments[*change.CommentID]
		comment.Score += change.ScoreDelta
		comment.ScoreMinus += change.MinusDelta
	} else {
		post := f.posts.posts[change.PostID]
		post.Score += change.ScoreDelta
		post.ScoreMinus += change.MinusDelta
		post.ScoringTimestamp = change.Now
	}
	return result, nil
}

type fakePostListCache struct {
	invalidated []uint64
}

func (f *fakePostListCache) InvalidateHotList(_ context.Context, sphereID uint64) error {
	f.invalidated = append(f.invalidated, sphereID)
	return nil
}

type stubModeration struct {
	ModerationService
	authorizeErr error
}

func (s stubModeration) AuthorizeVote(_ context.Context, _, _ uint64) error {
	return s.authorizeErr
}

func TestResolveVote(t *testing.T) {
	cases := []struct {
		name     string
		prior    model.VoteValue
		isUpvote bool
		want     model.VoteValue
	}{
		{"up click on upvote clears", model.VoteUp, true, model.VoteNone},
		{"down click on upvote flips", model.VoteUp, false, model.VoteDown},
		{"up click without vote upvotes", model.VoteNone, true, model.VoteUp},
		{"down click without vote downvotes", model.VoteNone, false, model.VoteDown},
		{"up click on downvote flips", model.VoteDown, true, model.VoteUp},
		{"down click on downvote clears", model.VoteDown, false, model.VoteNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveVote(tc.prior, tc.isUpvote))
		})
	}
}

// 每次点击都改变状态，Vote 里的同值兜底分支只防转换表回归
func TestResolveVoteNeverKeepsState(t *testing.T) {
	for _, prior := range []model.VoteValue{model.VoteDown, model.VoteNone, model.VoteUp} {
		for _, isUpvote := range []bool{true, false} {
			assert.NotEqual(t, prior, ResolveVote(prior, isUpvote), "prior %d upvote %v", prior, isUpvote)
		}
	}
}

func TestVoteDeltas(t *testing.T) {
	cases := []struct {
		newValue   model.VoteValue
		oldValue   model.VoteValue
		scoreDelta int
		minusDelta int
	}{
		{model.VoteNone, model.VoteNone, 0, 0},
		{model.VoteUp, model.VoteUp, 0, 0},
		{model.VoteDown, model.VoteDown, 0, 0},
		{model.VoteNone, model.VoteUp, -1, 0},
		{model.VoteUp, model.VoteNone, 1, 0},
		{model.VoteNone, model.VoteDown, 1, -1},
		{model.VoteDown, model.VoteNone, -1, 1},
		{model.VoteDown, model.VoteUp, -2, 1},
		{model.VoteUp, model.VoteDown, 2, -1},
	}

	for _, tc := range cases {
		scoreDelta, minusDelta := VoteDeltas(tc.newValue, tc.oldValue)
		assert.Equal(t, tc.scoreDelta, scoreDelta, "score delta for %d -> %d", tc.oldValue, tc.newValue)
		assert.Equal(t, tc.minusDelta, minusDelta, "minus delta for %d -> %d", tc.oldValue, tc.newValue)
	}
}

type voteFixture struct {
	posts    *fakePostRepo
	comments *fakeCommentRepo
	votes    *fakeVoteRepo
	cache    *fakePostListCache
	svc      VoteService
}

func newVoteFixture(t *testing.T) *voteFixture {
	t.Helper()
	postRepo := newFakePostRepo()
	commentRepo := newFakeCommentRepo()
	voteRepo := newFakeVoteRepo(postRepo, commentRepo)
	cache := &fakePostListCache{}

	require.NoError(t, postRepo.CreatePost(context.Background(), &model.Post{SphereID: 1, UserID: 1, Title: "t", Content: "c"}))
	require.NoError(t, commentRepo.CreateComment(context.Background(), &model.Comment{PostID: 1, UserID: 1, Content: "c"}))

	svc := NewVoteService(voteRepo, postRepo, commentRepo, stubModeration{}, cache)
	return &voteFixture{posts: postRepo, comments: commentRepo, votes: voteRepo, cache: cache, svc: svc}
}

func commentVoteReq(direction string, voteID *uint64) *dto.VoteReq {
	commentID := uint64(1)
	return &dto.VoteReq{PostID: 1, CommentID: &commentID, Direction: direction, VoteID: voteID}
}

func TestVoteLifecycleOnComment(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	// 第一次点赞
	result, err := f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	require.NoError(t, err)
	require.NotNil(t, result.VoteID)
	assert.Equal(t, int8(1), result.Value)
	assert.Equal(t, 1, f.comments.comments[1].Score)
	assert.Equal(t, 0, f.comments.comments[1].ScoreMinus)

	// 反向点击翻转为踩
	result, err = f.svc.Vote(ctx, 7, commentVoteReq("down", result.VoteID))
	require.NoError(t, err)
	require.NotNil(t, result.VoteID)
	assert.Equal(t, int8(-1), result.Value)
	assert.Equal(t, -1, f.comments.comments[1].Score)
	assert.Equal(t, 1, f.comments.comments[1].ScoreMinus)

	// 同向点击收回
	result, err = f.svc.Vote(ctx, 7, commentVoteReq("down", result.VoteID))
	require.NoError(t, err)
	assert.Nil(t, result.VoteID)
	assert.Equal(t, int8(0), result.Value)
	assert.Equal(t, 0, f.comments.comments[1].Score)
	assert.Equal(t, 0, f.comments.comments[1].ScoreMinus)

	// 收回后再投产生新的投票行
	result, err = f.svc.Vote(ctx, 7, commentVoteReq("down", nil))
	require.NoError(t, err)
	require.NotNil(t, result.VoteID)
	assert.Equal(t, int8(-1), result.Value)
	assert.Equal(t, -1, f.comments.comments[1].Score)
	assert.Equal(t, 1, f.comments.comments[1].ScoreMinus)

	// 评论投票不触碰帖子热榜缓存
	assert.Empty(t, f.cache.invalidated)
}

func postVoteReq(direction string, voteID *uint64) *dto.VoteReq {
	return &dto.VoteReq{PostID: 1, Direction: direction, VoteID: voteID}
}

func TestVoteLifecycleOnPost(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)
	post := f.posts.posts[1]

	// 第一次点赞
	result, err := f.svc.Vote(ctx, 7, postVoteReq("up", nil))
	require.NoError(t, err)
	require.NotNil(t, result.VoteID)
	assert.Equal(t, int8(1), result.Value)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, post.Score)
	assert.Equal(t, 0, post.ScoreMinus)
	assert.False(t, post.ScoringTimestamp.IsZero())
	firstScoredAt := post.ScoringTimestamp

	// 同向点击收回，投票行删除
	result, err = f.svc.Vote(ctx, 7, postVoteReq("up", result.VoteID))
	require.NoError(t, err)
	assert.Nil(t, result.VoteID)
	assert.Equal(t, 0, post.Score)
	remaining, err := f.votes.GetUserVote(ctx, 7, 1, nil)
	require.NoError(t, err)
	assert.Nil(t, remaining)
	assert.False(t, post.ScoringTimestamp.Before(firstScoredAt))

	// 收回后点踩
	result, err = f.svc.Vote(ctx, 7, postVoteReq("down", nil))
	require.NoError(t, err)
	require.NotNil(t, result.VoteID)
	assert.Equal(t, int8(-1), result.Value)
	assert.Equal(t, -1, post.Score)
	assert.Equal(t, 1, post.ScoreMinus)

	// 每次帖子投票都使所在社区的热榜缓存失效
	assert.Equal(t, []uint64{1, 1, 1}, f.cache.invalidated)
}

func TestVoteConflictWhenPriorUnknown(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	result, err := f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	require.NoError(t, err)

	// 客户端没带已有投票，但库里已有 → 冲突
	_, err = f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	assert.ErrorIs(t, err, ErrVoteConflict)

	// 带上正确的投票行则成功
	_, err = f.svc.Vote(ctx, 7, commentVoteReq("up", result.VoteID))
	assert.NoError(t, err)
}

func TestVoteConflictStaleVoteID(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	stale := uint64(999)
	_, err := f.svc.Vote(ctx, 7, commentVoteReq("up", &stale))
	assert.ErrorIs(t, err, ErrVoteConflict)
}

func TestVoteConflictForeignVoteID(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)

	result, err := f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	require.NoError(t, err)

	// 别人的投票行不能当作自己的已知状态
	_, err = f.svc.Vote(ctx, 8, commentVoteReq("up", result.VoteID))
	assert.ErrorIs(t, err, ErrVoteConflict)
}

func TestVoteOnDeletedPost(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)
	require.NoError(t, f.posts.SoftDeletePost(ctx, 1, time.Now()))

	_, err := f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestVoteOnModeratedComment(t *testing.T) {
	ctx := context.Background()
	f := newVoteFixture(t)
	require.NoError(t, f.comments.SetModerated(ctx, 1, 2, "removed"))

	_, err := f.svc.Vote(ctx, 7, commentVoteReq("up", nil))
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestVoteRejectedForBannedUser(t *testing.T) {
	ctx := context.Background()
	postRepo := newFakePostRepo()
	commentRepo := newFakeCommentRepo()
	voteRepo := newFakeVoteRepo(postRepo, commentRepo)
	require.NoError(t, postRepo.CreatePost(ctx, &model.Post{SphereID: 1, UserID: 1, Title: "t", Content: "c"}))
	require.NoError(t, commentRepo.CreateComment(ctx, &model.Comment{PostID: 1, UserID: 1, Content: "c"}))

	svc := NewVoteService(voteRepo, postRepo, commentRepo, stubModeration{authorizeErr: ErrUserBan}, &fakePostListCache{})

	_, err := svc.Vote(ctx, 7, commentVoteReq("up", nil))
	assert.ErrorIs(t, err, ErrUserBan)
	assert.Equal(t, 0, commentRepo.comments[1].Score)
}
