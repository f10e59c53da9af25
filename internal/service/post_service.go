package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/pkg/redis"
	"ShareSphere/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	GetPostDetail(ctx context.Context, viewerID, postID uint64) (*dto.PostDetailDTO, error)
	ListPosts(ctx context.Context, sphereName string, satelliteID *uint64, sortType model.PostSortType, page, pageSize int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) error
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	sphereRepo repository.SphereRepo
	voteRepo   repository.VoteRepo
	commentSvc CommentService
	moderation ModerationService
}

func NewPostService(
	postRepo repository.PostRepo,
	sphereRepo repository.SphereRepo,
	voteRepo repository.VoteRepo,
	commentSvc CommentService,
	moderation ModerationService,
) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		sphereRepo: sphereRepo,
		voteRepo:   voteRepo,
		commentSvc: commentSvc,
		moderation: moderation,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	sphere, err := s.sphereRepo.GetSphere(ctx, req.SphereID)
	if err != nil {
		return nil, err
	}
	if sphere == nil || sphere.Status != consts.SphereStatusNormal {
		return nil, ErrSphereNotFound
	}

	if req.SatelliteID != nil {
		satellite, err := s.sphereRepo.GetSatellite(ctx, *req.SatelliteID)
		if err != nil {
			return nil, err
		}
		if satellite == nil || satellite.SphereID != sphere.ID {
			return nil, ErrSatelliteNotFound
		}
	}

	if err = s.moderation.AuthorizeVote(ctx, userID, sphere.ID); err != nil {
		return nil, err
	}

	post := &model.Post{
		SphereID:         req.SphereID,
		SatelliteID:      req.SatelliteID,
		UserID:           userID,
		Title:            req.Title,
		Content:          req.Content,
		ScoringTimestamp: time.Now(),
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	postDTO := &dto.PostDTO{}
	if err = copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	return postDTO, nil
}

func (s *PostServiceImpl) GetPostDetail(ctx context.Context, viewerID, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsActive() {
		return nil, ErrPostNotFound
	}

	detail := &dto.PostDetailDTO{}
	if err = copier.Copy(&detail.PostDTO, post); err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.commentSvc.GetCommentCount(gCtx, postID)
		if err != nil {
			return err
		}
		detail.CommentCount = count
		return nil
	})
	if viewerID != 0 {
		g.Go(func() error {
			vote, err := s.voteRepo.GetUserVote(gCtx, viewerID, postID, nil)
			if err != nil {
				return err
			}
			if vote != nil {
				detail.ViewerVoteID = &vote.ID
				detail.ViewerVote = int8(vote.Value)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, sphereName string, satelliteID *uint64, sortType model.PostSortType, page, pageSize int) ([]*dto.PostDTO, error) {
	if !sortType.Valid() {
		return nil, ErrSortInvalid
	}

	sphere, err := s.sphereRepo.GetSphereByName(ctx, sphereName)
	if err != nil {
		return nil, err
	}
	if sphere == nil {
		return nil, ErrSphereNotFound
	}

	cacheable := sortType == model.PostSortHot && satelliteID == nil && page == 1
	cacheKey := consts.PostHotListKey + strconv.FormatUint(sphere.ID, 10)
	if cacheable {
		if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
			var postDTOs []*dto.PostDTO
			if err = json.Unmarshal([]byte(cached), &postDTOs); err == nil {
				return postDTOs, nil
			}
		}
	}

	posts, err := s.postRepo.ListBySphere(ctx, sphere.ID, satelliteID, sortType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	postDTOs := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO := &dto.PostDTO{}
		if err = copier.Copy(postDTO, post); err != nil {
			return nil, err
		}
		postDTOs = append(postDTOs, postDTO)
	}

	if cacheable {
		if data, err := json.Marshal(postDTOs); err == nil {
			if err = redis.SetWithExpiration(ctx, cacheKey, string(data), consts.HotListCacheTTL); err != nil {
				log.WarnContext(ctx, "failed to cache hot post list", "sphere", sphereName, "err", err)
			}
		}
	}
	return postDTOs, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || !post.IsActive() {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		return ErrNotAuthor
	}
	return s.postRepo.UpdateContent(ctx, postID, req.Title, req.Content, time.Now())
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.DeleteTimestamp != nil {
		return ErrPostNotFound
	}
	if post.UserID != userID {
		role, err := s.sphereRepo.GetRole(ctx, post.SphereID, userID)
		if err != nil {
			return err
		}
		if role == nil {
			return ErrNotAuthor
		}
	}
	return s.postRepo.SoftDeletePost(ctx, postID, time.Now())
}
