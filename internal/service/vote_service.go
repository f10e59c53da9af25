package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type VoteService interface {
	Vote(ctx context.Context, userID uint64, req *dto.VoteReq) (*dto.VoteDTO, error)
}

type VoteServiceImpl struct {
	voteRepo    repository.VoteRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	moderation  ModerationService
	listCache   PostListCache
}

func NewVoteService(
	voteRepo repository.VoteRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	moderation ModerationService,
	listCache PostListCache,
) VoteService {
	return &VoteServiceImpl{
		voteRepo:    voteRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		moderation:  moderation,
		listCache:   listCache,
	}
}

type voteKey struct {
	prior    model.VoteValue
	isUpvote bool
}

// 同向点击收回投票，反向点击翻转
var voteTransitions = map[voteKey]model.VoteValue{
	{model.VoteUp, true}:    model.VoteNone,
	{model.VoteUp, false}:   model.VoteDown,
	{model.VoteNone, true}:  model.VoteUp,
	{model.VoteNone, false}: model.VoteDown,
	{model.VoteDown, true}:  model.VoteUp,
	{model.VoteDown, false}: model.VoteNone,
}

// ResolveVote 由当前投票值与点击方向得出目标投票值
func ResolveVote(prior model.VoteValue, isUpvote bool) model.VoteValue {
	return voteTransitions[voteKey{prior, isUpvote}]
}

// VoteDeltas 投票值变化对 score 与 score_minus 的影响
func VoteDeltas(newValue, oldValue model.VoteValue) (scoreDelta, minusDelta int) {
	scoreDelta = int(newValue) - int(oldValue)

	if newValue == model.VoteDown && oldValue != model.VoteDown {
		minusDelta = 1
	} else if newValue != model.VoteDown && oldValue == model.VoteDown {
		minusDelta = -1
	}
	return scoreDelta, minusDelta
}

func (s *VoteServiceImpl) Vote(ctx context.Context, userID uint64, req *dto.VoteReq) (*dto.VoteDTO, error) {
	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive() {
		return nil, ErrPostNotFound
	}

	var targetScore int
	if req.CommentID != nil {
		comment, err := s.commentRepo.GetComment(ctx, *req.CommentID)
		if err != nil {
			return nil, err
		}
		if comment == nil || !comment.IsActive() || comment.PostID != post.ID {
			return nil, ErrCommentNotFound
		}
		targetScore = comment.Score
	} else {
		targetScore = post.Score
	}

	if err = s.moderation.AuthorizeVote(ctx, userID, post.SphereID); err != nil {
		return nil, err
	}

	prior, err := s.loadPriorVote(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	priorValue := model.VoteNone
	if prior != nil {
		priorValue = prior.Value
	}
	newValue := ResolveVote(priorValue, req.Direction == "up")
	// 转换表不会把状态映射到自身，此处兜底：目标值与当前值相同时不产生增量
	if newValue == priorValue {
		return voteResult(prior, targetScore), nil
	}

	scoreDelta, minusDelta := VoteDeltas(newValue, priorValue)
	vote, err := s.voteRepo.ApplyVoteChange(ctx, &repository.VoteChange{
		UserID:     userID,
		PostID:     req.PostID,
		CommentID:  req.CommentID,
		Prior:      prior,
		NewValue:   newValue,
		ScoreDelta: scoreDelta,
		MinusDelta: minusDelta,
		Now:        time.Now(),
	})
	if err != nil {
		if isDuplicateError(err) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoteConflict
		}
		return nil, err
	}

	if req.CommentID == nil {
		s.invalidateHotCache(ctx, post.SphereID)
	}

	return voteResult(vote, targetScore+scoreDelta), nil
}

// loadPriorVote 按客户端声明的已知投票定位当前行，声明与库中状态不一致时报冲突
func (s *VoteServiceImpl) loadPriorVote(ctx context.Context, userID uint64, req *dto.VoteReq) (*model.Vote, error) {
	if req.VoteID == nil {
		existing, err := s.voteRepo.GetUserVote(ctx, userID, req.PostID, req.CommentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrVoteConflict
		}
		return nil, nil
	}

	vote, err := s.voteRepo.GetVoteByID(ctx, *req.VoteID)
	if err != nil {
		return nil, err
	}
	if vote == nil || vote.UserID != userID || vote.PostID != req.PostID {
		return nil, ErrVoteConflict
	}
	if (vote.CommentID == nil) != (req.CommentID == nil) {
		return nil, ErrVoteConflict
	}
	if vote.CommentID != nil && *vote.CommentID != *req.CommentID {
		return nil, ErrVoteConflict
	}
	return vote, nil
}

func (s *VoteServiceImpl) invalidateHotCache(ctx context.Context, sphereID uint64) {
	if err := s.listCache.InvalidateHotList(ctx, sphereID); err != nil {
		log.WarnContext(ctx, "failed to invalidate hot list cache", "sphere_id", sphereID, "err", err)
	}
}

func voteResult(vote *model.Vote, score int) *dto.VoteDTO {
	result := &dto.VoteDTO{Score: score}
	if vote != nil {
		result.VoteID = &vote.ID
		result.Value = int8(vote.Value)
	}
	return result
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
