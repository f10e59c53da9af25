package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"ShareSphere/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type ModerationService interface {
	AuthorizeVote(ctx context.Context, userID, sphereID uint64) error
	BanUser(ctx context.Context, moderatorID uint64, req *dto.BanUserReq) (*dto.BanDTO, error)
	UnbanUser(ctx context.Context, moderatorID, sphereID, banID uint64) error
	ListBans(ctx context.Context, moderatorID, sphereID uint64, page, pageSize int) ([]*dto.BanDTO, error)
	ModeratePost(ctx context.Context, moderatorID, postID uint64, message string) error
	ModerateComment(ctx context.Context, moderatorID, commentID uint64, message string) error
	PinPost(ctx context.Context, moderatorID, postID uint64, pinned bool) error
	PinComment(ctx context.Context, moderatorID, commentID uint64, pinned bool) error
	RequireModerator(ctx context.Context, userID, sphereID uint64) error
}

type ModerationServiceImpl struct {
	userRepo    repository.UserRepo
	sphereRepo  repository.SphereRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	banRepo     repository.BanRepo
}

func NewModerationService(
	userRepo repository.UserRepo,
	sphereRepo repository.SphereRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	banRepo repository.BanRepo,
) ModerationService {
	return &ModerationServiceImpl{
		userRepo:    userRepo,
		sphereRepo:  sphereRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		banRepo:     banRepo,
	}
}

// AuthorizeVote 投票前置检查，全站封禁或社区内封禁都拒绝
func (s *ModerationServiceImpl) AuthorizeVote(ctx context.Context, userID, sphereID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.IsDeleted {
		return ErrUserNotFound
	}
	if user.Status == consts.UserStatusBanned {
		return ErrUserBan
	}

	ban, err := s.banRepo.GetActiveBan(ctx, userID, sphereID, time.Now())
	if err != nil {
		return err
	}
	if ban != nil {
		return ErrUserBan
	}
	return nil
}

func (s *ModerationServiceImpl) BanUser(ctx context.Context, moderatorID uint64, req *dto.BanUserReq) (*dto.BanDTO, error) {
	if req.UserID == moderatorID {
		return nil, ErrUserBanSelf
	}
	if err := s.RequireModerator(ctx, moderatorID, req.SphereID); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetUserById(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil || target.IsDeleted {
		return nil, ErrUserNotFound
	}

	targetRole, err := s.sphereRepo.GetRole(ctx, req.SphereID, req.UserID)
	if err != nil {
		return nil, err
	}
	if targetRole != nil {
		return nil, ErrUserBanModerator
	}

	duration, err := parseBanDuration(&req.Duration)
	if err != nil {
		return nil, err
	}
	if duration.Kind == model.BanDurationNone {
		return nil, nil
	}

	ban := &model.UserBan{
		UserID:      req.UserID,
		SphereID:    req.SphereID,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
		Until:       duration.Until(time.Now()),
	}
	if err = s.banRepo.CreateBan(ctx, ban); err != nil {
		return nil, err
	}

	banDTO := &dto.BanDTO{}
	if err = copier.Copy(banDTO, ban); err != nil {
		return nil, err
	}
	return banDTO, nil
}

func (s *ModerationServiceImpl) UnbanUser(ctx context.Context, moderatorID, sphereID, banID uint64) error {
	if err := s.RequireModerator(ctx, moderatorID, sphereID); err != nil {
		return err
	}
	return s.banRepo.RemoveBan(ctx, banID)
}

func (s *ModerationServiceImpl) ListBans(ctx context.Context, moderatorID, sphereID uint64, page, pageSize int) ([]*dto.BanDTO, error) {
	if err := s.RequireModerator(ctx, moderatorID, sphereID); err != nil {
		return nil, err
	}
	bans, err := s.banRepo.ListBans(ctx, sphereID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	banDTOs := make([]*dto.BanDTO, 0, len(bans))
	for _, ban := range bans {
		banDTO := &dto.BanDTO{}
		if err = copier.Copy(banDTO, ban); err != nil {
			return nil, err
		}
		banDTOs = append(banDTOs, banDTO)
	}
	return banDTOs, nil
}

func (s *ModerationServiceImpl) ModeratePost(ctx context.Context, moderatorID, postID uint64, message string) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = s.RequireModerator(ctx, moderatorID, post.SphereID); err != nil {
		return err
	}
	return s.postRepo.SetModerated(ctx, postID, moderatorID, message)
}

func (s *ModerationServiceImpl) ModerateComment(ctx context.Context, moderatorID, commentID uint64, message string) error {
	comment, post, err := s.getCommentWithPost(ctx, commentID)
	if err != nil {
		return err
	}
	if err = s.RequireModerator(ctx, moderatorID, post.SphereID); err != nil {
		return err
	}
	return s.commentRepo.SetModerated(ctx, comment.ID, moderatorID, message)
}

func (s *ModerationServiceImpl) PinPost(ctx context.Context, moderatorID, postID uint64, pinned bool) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || !post.IsActive() {
		return ErrPostNotFound
	}
	if err = s.RequireModerator(ctx, moderatorID, post.SphereID); err != nil {
		return err
	}
	return s.postRepo.SetPinned(ctx, postID, pinned)
}

func (s *ModerationServiceImpl) PinComment(ctx context.Context, moderatorID, commentID uint64, pinned bool) error {
	comment, post, err := s.getCommentWithPost(ctx, commentID)
	if err != nil {
		return err
	}
	if err = s.RequireModerator(ctx, moderatorID, post.SphereID); err != nil {
		return err
	}
	return s.commentRepo.SetPinned(ctx, comment.ID, pinned)
}

// RequireModerator 校验用户在社区内的版主身份
func (s *ModerationServiceImpl) RequireModerator(ctx context.Context, userID, sphereID uint64) error {
	role, err := s.sphereRepo.GetRole(ctx, sphereID, userID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrNotModerator
	}
	return nil
}

func (s *ModerationServiceImpl) getCommentWithPost(ctx context.Context, commentID uint64) (*model.Comment, *model.Post, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, nil, err
	}
	if comment == nil {
		return nil, nil, ErrCommentNotFound
	}
	post, err := s.postRepo.GetPost(ctx, comment.PostID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}
	return comment, post, nil
}

func parseBanDuration(d *dto.BanDurationDTO) (model.BanDuration, error) {
	switch d.Kind {
	case "none":
		return model.BanDuration{Kind: model.BanDurationNone}, nil
	case "timed":
		if d.Days <= 0 {
			return model.BanDuration{}, ErrParamInvalid
		}
		return model.BanDuration{Kind: model.BanDurationTimed, Days: d.Days}, nil
	case "permanent":
		return model.BanDuration{Kind: model.BanDurationPermanent}, nil
	default:
		return model.BanDuration{}, ErrParamInvalid
	}
}
