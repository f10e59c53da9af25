package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentNodeDTO, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) error
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetCommentTree(ctx context.Context, viewerID, postID uint64, sortType model.CommentSortType, page int) ([]*dto.CommentNodeDTO, error)
	GetCommentCount(ctx context.Context, postID uint64) (int64, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	moderation  ModerationService
	countCache  CommentCountCache
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	moderation ModerationService,
	countCache CommentCountCache,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		moderation:  moderation,
		countCache:  countCache,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentNodeDTO, error) {
	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive() {
		return nil, ErrPostNotFound
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetComment(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsActive() || parent.PostID != post.ID {
			return nil, ErrCommentNotFound
		}
	}

	if err = s.moderation.AuthorizeVote(ctx, userID, post.SphereID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:   req.PostID,
		UserID:   userID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if err = s.countCache.Add(ctx, req.PostID, 1); err != nil {
		log.WarnContext(ctx, "failed to bump comment count cache", "post_id", req.PostID, "err", err)
	}

	node := &dto.CommentNodeDTO{Children: []*dto.CommentNodeDTO{}}
	if err = copier.Copy(node, comment); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || !comment.IsActive() {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotAuthor
	}
	return s.commentRepo.UpdateContent(ctx, commentID, req.Content, time.Now())
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.DeleteTimestamp != nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotAuthor
	}
	if err = s.commentRepo.SoftDeleteComment(ctx, commentID, time.Now()); err != nil {
		return err
	}

	if err = s.countCache.Add(ctx, comment.PostID, -1); err != nil {
		log.WarnContext(ctx, "failed to bump comment count cache", "post_id", comment.PostID, "err", err)
	}
	return nil
}

// GetCommentTree 取一页可见评论并在内存中组装排序后的评论森林
func (s *CommentServiceImpl) GetCommentTree(ctx context.Context, viewerID, postID uint64, sortType model.CommentSortType, page int) ([]*dto.CommentNodeDTO, error) {
	if !sortType.Valid() {
		return nil, ErrSortInvalid
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive() {
		return nil, ErrPostNotFound
	}

	rows, err := s.commentRepo.GetCommentPage(ctx, postID, viewerID, consts.CommentPageSize, (page-1)*consts.CommentPageSize)
	if err != nil {
		return nil, err
	}

	forest, err := buildCommentForest(rows)
	if err != nil {
		return nil, err
	}
	sortCommentForest(forest, sortType)
	return forest, nil
}

func (s *CommentServiceImpl) GetCommentCount(ctx context.Context, postID uint64) (int64, error) {
	count, found, err := s.countCache.Get(ctx, postID)
	if err == nil && found {
		return count, nil
	}

	count, err = s.commentRepo.CountActive(ctx, postID)
	if err != nil {
		return 0, err
	}
	if err = s.countCache.Set(ctx, postID, count); err != nil {
		log.WarnContext(ctx, "failed to cache comment count", "post_id", postID, "err", err)
	}
	return count, nil
}

// buildCommentForest 把按主键排序的平面评论页组装成森林，
// 父节点不在本页内的评论提升为根
func buildCommentForest(rows []*repository.CommentWithVote) ([]*dto.CommentNodeDTO, error) {
	nodes := make(map[uint64]*dto.CommentNodeDTO, len(rows))
	ordered := make([]*dto.CommentNodeDTO, 0, len(rows))

	for _, row := range rows {
		node := &dto.CommentNodeDTO{Children: []*dto.CommentNodeDTO{}}
		if err := copier.Copy(node, &row.Comment); err != nil {
			return nil, err
		}
		node.ViewerVoteID = row.VoteID
		if row.VoteValue != nil {
			node.ViewerVote = int8(*row.VoteValue)
		}
		nodes[node.ID] = node
		ordered = append(ordered, node)
	}

	forest := make([]*dto.CommentNodeDTO, 0, len(ordered))
	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		forest = append(forest, node)
	}
	return forest, nil
}

// sortCommentForest 每一层先置顶，再按排序方式比较，并以 ID 定序
func sortCommentForest(nodes []*dto.CommentNodeDTO, sortType model.CommentSortType) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return lessCommentNode(nodes[i], nodes[j], sortType)
	})
	for _, node := range nodes {
		sortCommentForest(node.Children, sortType)
	}
}

func lessCommentNode(a, b *dto.CommentNodeDTO, sortType model.CommentSortType) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}

	switch sortType {
	case model.CommentSortRecent:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	default:
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	return a.ID < b.ID
}
