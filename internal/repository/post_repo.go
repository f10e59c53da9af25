package repository

import (
	"ShareSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	UpdateContent(ctx context.Context, id uint64, title, content string, editedAt time.Time) error
	SoftDeletePost(ctx context.Context, id uint64, deletedAt time.Time) error
	SetModerated(ctx context.Context, id, moderatorID uint64, message string) error
	SetPinned(ctx context.Context, id uint64, pinned bool) error
	ListBySphere(ctx context.Context, sphereID uint64, satelliteID *uint64, sort model.PostSortType, limit, offset int) ([]*model.Post, error)
	ListActiveForScoring(ctx context.Context, afterID uint64, limit int) ([]*model.Post, error)
	UpdateDerivedScores(ctx context.Context, id uint64, recommended, trending float64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) UpdateContent(ctx context.Context, id uint64, title, content string, editedAt time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          title,
		"content":        content,
		"edit_timestamp": editedAt,
	}).Error
}

func (s PostRepoImpl) SoftDeletePost(ctx context.Context, id uint64, deletedAt time.Time) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ? AND delete_timestamp IS NULL", id).
		Update("delete_timestamp", deletedAt).Error
}

func (s PostRepoImpl) SetModerated(ctx context.Context, id, moderatorID uint64, message string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"moderator_id":    moderatorID,
		"moderation_text": message,
	}).Error
}

func (s PostRepoImpl) SetPinned(ctx context.Context, id uint64, pinned bool) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("is_pinned", pinned).Error
}

func (s PostRepoImpl) ListBySphere(ctx context.Context, sphereID uint64, satelliteID *uint64, sort model.PostSortType, limit, offset int) ([]*model.Post, error) {
	query := s.db.WithContext(ctx).
		Where("sphere_id = ? AND delete_timestamp IS NULL AND moderator_id IS NULL", sphereID)
	if satelliteID != nil {
		query = query.Where("satellite_id = ?", *satelliteID)
	}

	var posts []*model.Post
	err := query.
		Order("is_pinned DESC").
		Order(sort.OrderColumn() + " DESC").
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListActiveForScoring(ctx context.Context, afterID uint64, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Select("id", "score", "score_minus", "scoring_timestamp", "created_at").
		Where("id > ? AND delete_timestamp IS NULL AND moderator_id IS NULL", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) UpdateDerivedScores(ctx context.Context, id uint64, recommended, trending float64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"recommended_score": recommended,
		"trending_score":    trending,
	}).Error
}
