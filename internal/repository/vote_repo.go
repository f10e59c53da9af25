package repository

import (
	"ShareSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// VoteChange 一次投票状态迁移及其对目标计数的影响
type VoteChange struct {
	UserID     uint64
	PostID     uint64
	CommentID  *uint64
	Prior      *model.Vote
	NewValue   model.VoteValue
	ScoreDelta int
	MinusDelta int
	Now        time.Time
}

type VoteRepo interface {
	GetVoteByID(ctx context.Context, id uint64) (*model.Vote, error)
	GetUserVote(ctx context.Context, userID, postID uint64, commentID *uint64) (*model.Vote, error)
	ApplyVoteChange(ctx context.Context, change *VoteChange) (*model.Vote, error)
}

type VoteRepoImpl struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepo {
	return &VoteRepoImpl{
		db: db,
	}
}

func (s VoteRepoImpl) GetVoteByID(ctx context.Context, id uint64) (*model.Vote, error) {
	var vote model.Vote
	err := s.db.WithContext(ctx).First(&vote, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (s VoteRepoImpl) GetUserVote(ctx context.Context, userID, postID uint64, commentID *uint64) (*model.Vote, error) {
	query := s.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID)
	if commentID != nil {
		query = query.Where("comment_id = ?", *commentID)
	} else {
		query = query.Where("comment_id IS NULL")
	}

	var vote model.Vote
	err := query.First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// ApplyVoteChange 在一个事务中写投票行并同步目标计数
func (s VoteRepoImpl) ApplyVoteChange(ctx context.Context, change *VoteChange) (*model.Vote, error) {
	var result *model.Vote

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch {
		case change.Prior == nil:
			vote := &model.Vote{
				UserID:    change.UserID,
				PostID:    change.PostID,
				CommentID: change.CommentID,
				Value:     change.NewValue,
			}
			if err := tx.Create(vote).Error; err != nil {
				return err
			}
			result = vote
		case change.NewValue == model.VoteNone:
			res := tx.Where("id = ? AND value = ?", change.Prior.ID, change.Prior.Value).
				Delete(&model.Vote{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			result = nil
		default:
			res := tx.Model(&model.Vote{}).
				Where("id = ? AND value = ?", change.Prior.ID, change.Prior.Value).
				Update("value", change.NewValue)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			updated := *change.Prior
			updated.Value = change.NewValue
			result = &updated
		}

		if change.CommentID != nil {
			return tx.Model(&model.Comment{}).Where("id = ?", *change.CommentID).Updates(map[string]interface{}{
				"score":       gorm.Expr("score + ?", change.ScoreDelta),
				"score_minus": gorm.Expr("score_minus + ?", change.MinusDelta),
			}).Error
		}
		return tx.Model(&model.Post{}).Where("id = ?", change.PostID).Updates(map[string]interface{}{
			"score":             gorm.Expr("score + ?", change.ScoreDelta),
			"score_minus":       gorm.Expr("score_minus + ?", change.MinusDelta),
			"scoring_timestamp": change.Now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
