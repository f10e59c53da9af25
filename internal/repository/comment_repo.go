package repository

import (
	"ShareSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CommentWithVote 带当前用户投票状态的评论行
type CommentWithVote struct {
	model.Comment
	VoteID    *uint64          `gorm:"column:vote_id"`
	VoteValue *model.VoteValue `gorm:"column:vote_value"`
}

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	UpdateContent(ctx context.Context, id uint64, content string, editedAt time.Time) error
	SoftDeleteComment(ctx context.Context, id uint64, deletedAt time.Time) error
	SetModerated(ctx context.Context, id, moderatorID uint64, message string) error
	SetPinned(ctx context.Context, id uint64, pinned bool) error
	GetCommentPage(ctx context.Context, postID, viewerID uint64, limit, offset int) ([]*CommentWithVote, error)
	CountActive(ctx context.Context, postID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

// CreateComment 写入评论并同步帖子的评论计数
func (s CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", comment.PostID).
			Update("num_comments", gorm.Expr("num_comments + 1")).Error
	})
}

func (s CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s CommentRepoImpl) UpdateContent(ctx context.Context, id uint64, content string, editedAt time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content":        content,
		"edit_timestamp": editedAt,
	}).Error
}

// SoftDeleteComment 软删除评论并回退帖子的评论计数
func (s CommentRepoImpl) SoftDeleteComment(ctx context.Context, id uint64, deletedAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Comment{}).
			Where("id = ? AND delete_timestamp IS NULL", id).
			Update("delete_timestamp", deletedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&model.Post{}).Where("id = ? AND num_comments > 0", comment.PostID).
			Update("num_comments", gorm.Expr("num_comments - 1")).Error
	})
}

func (s CommentRepoImpl) SetModerated(ctx context.Context, id, moderatorID uint64, message string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"moderator_id":    moderatorID,
		"moderation_text": message,
	}).Error
}

func (s CommentRepoImpl) SetPinned(ctx context.Context, id uint64, pinned bool) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_pinned", pinned).Error
}

// GetCommentPage 按主键顺序取一页可见评论，并左连当前用户的投票
func (s CommentRepoImpl) GetCommentPage(ctx context.Context, postID, viewerID uint64, limit, offset int) ([]*CommentWithVote, error) {
	var rows []*CommentWithVote
	err := s.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.*, v.id AS vote_id, v.value AS vote_value").
		Joins("LEFT JOIN votes v ON v.comment_id = c.id AND v.user_id = ?", viewerID).
		Where("c.post_id = ? AND c.delete_timestamp IS NULL AND c.moderator_id IS NULL", postID).
		Order("c.id ASC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s CommentRepoImpl) CountActive(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND delete_timestamp IS NULL AND moderator_id IS NULL", postID).
		Count(&count).Error
	return count, err
}
