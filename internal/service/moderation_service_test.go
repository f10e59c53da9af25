package service

import (
	"ShareSphere/internal/api/dto"
	"ShareSphere/internal/model"
	"ShareSphere/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]*model.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateUserStatus(_ context.Context, id uint64, status int8) (int64, error) {
	user, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	user.Status = status
	return 1, nil
}

type fakeSphereRepo struct {
	spheres    map[uint64]*model.Sphere
	satellites map[uint64]*model.Satellite
	roles      []*model.SphereRole
}

func newFakeSphereRepo() *fakeSphereRepo {
	return &fakeSphereRepo{
		spheres:    make(map[uint64]*model.Sphere),
		satellites: make(map[uint64]*model.Satellite),
	}
}

func (f *fakeSphereRepo) CreateSphere(_ context.Context, sphere *model.Sphere, creatorRole *model.SphereRole) error {
	sphere.ID = uint64(len(f.spheres) + 1)
	f.spheres[sphere.ID] = sphere
	creatorRole.SphereID = sphere.ID
	f.roles = append(f.roles, creatorRole)
	return nil
}

func (f *fakeSphereRepo) GetSphere(_ context.Context, id uint64) (*model.Sphere, error) {
	return f.spheres[id], nil
}

func (f *fakeSphereRepo) GetSphereByName(_ context.Context, name string) (*model.Sphere, error) {
	for _, sphere := range f.spheres {
		if sphere.Name == name {
			return sphere, nil
		}
	}
	return nil, nil
}

func (f *fakeSphereRepo) ListSpheres(_ context.Context, _, _ int) ([]*model.Sphere, error) {
	return nil, nil
}

func (f *fakeSphereRepo) CreateSatellite(_ context.Context, satellite *model.Satellite) error {
	satellite.ID = uint64(len(f.satellites) + 1)
	f.satellites[satellite.ID] = satellite
	return nil
}

func (f *fakeSphereRepo) GetSatellite(_ context.Context, id uint64) (*model.Satellite, error) {
	return f.satellites[id], nil
}

func (f *fakeSphereRepo) ListSatellites(_ context.Context, _ uint64) ([]*model.Satellite, error) {
	return nil, nil
}

func (f *fakeSphereRepo) GetRole(_ context.Context, sphereID, userID uint64) (*model.SphereRole, error) {
	for _, role := range f.roles {
		if role.SphereID == sphereID && role.UserID == userID {
			return role, nil
		}
	}
	return nil, nil
}

func (f *fakeSphereRepo) AddRole(_ context.Context, role *model.SphereRole) error {
	f.roles = append(f.roles, role)
	return nil
}

type fakeBanRepo struct {
	bans   map[uint64]*model.UserBan
	nextID uint64
}

func newFakeBanRepo() *fakeBanRepo {
	return &fakeBanRepo{bans: make(map[uint64]*model.UserBan)}
}

func (f *fakeBanRepo) CreateBan(_ context.Context, ban *model.UserBan) error {
	f.nextID++
	ban.ID = f.nextID
	f.bans[ban.ID] = ban
	return nil
}

func (f *fakeBanRepo) GetActiveBan(_ context.Context, userID, sphereID uint64, now time.Time) (*model.UserBan, error) {
	for _, ban := range f.bans {
		if ban.UserID == userID && ban.SphereID == sphereID && ban.Active(now) {
			return ban, nil
		}
	}
	return nil, nil
}

func (f *fakeBanRepo) ListBans(_ context.Context, sphereID uint64, _, _ int) ([]*model.UserBan, error) {
	var bans []*model.UserBan
	for _, ban := range f.bans {
		if ban.SphereID == sphereID {
			bans = append(bans, ban)
		}
	}
	return bans, nil
}

func (f *fakeBanRepo) RemoveBan(_ context.Context, id uint64) error {
	delete(f.bans, id)
	return nil
}

type moderationFixture struct {
	svc     ModerationService
	users   *fakeUserRepo
	spheres *fakeSphereRepo
	bans    *fakeBanRepo
}

// 默认数据：sphere 1，用户 1 是版主，用户 2 是普通用户
func newModerationFixture(t *testing.T) *moderationFixture {
	t.Helper()
	users := newFakeUserRepo(
		&model.User{ID: 1, Username: "mod"},
		&model.User{ID: 2, Username: "member"},
	)
	spheres := newFakeSphereRepo()
	sphere := &model.Sphere{Name: "golang", CreatorID: 1}
	require.NoError(t, spheres.CreateSphere(context.Background(), sphere, &model.SphereRole{UserID: 1, Level: 1}))
	bans := newFakeBanRepo()
	svc := NewModerationService(users, spheres, newFakePostRepo(), newFakeCommentRepo(), bans)
	return &moderationFixture{svc: svc, users: users, spheres: spheres, bans: bans}
}

func banReq(userID uint64, duration dto.BanDurationDTO) *dto.BanUserReq {
	return &dto.BanUserReq{
		UserID:   userID,
		SphereID: 1,
		Reason:   "spam",
		Duration: duration,
	}
}

func TestParseBanDuration(t *testing.T) {
	cases := []struct {
		name    string
		in      dto.BanDurationDTO
		want    model.BanDuration
		wantErr error
	}{
		{"none", dto.BanDurationDTO{Kind: "none"}, model.BanDuration{Kind: model.BanDurationNone}, nil},
		{"timed", dto.BanDurationDTO{Kind: "timed", Days: 7}, model.BanDuration{Kind: model.BanDurationTimed, Days: 7}, nil},
		{"timed with zero days", dto.BanDurationDTO{Kind: "timed"}, model.BanDuration{}, ErrParamInvalid},
		{"permanent", dto.BanDurationDTO{Kind: "permanent"}, model.BanDuration{Kind: model.BanDurationPermanent}, nil},
		{"unknown kind", dto.BanDurationDTO{Kind: "forever"}, model.BanDuration{}, ErrParamInvalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseBanDuration(&c.in)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestBanUserTimed(t *testing.T) {
	f := newModerationFixture(t)
	before := time.Now()

	ban, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "timed", Days: 3}))
	require.NoError(t, err)
	require.NotNil(t, ban)
	require.NotNil(t, ban.Until)

	want := before.AddDate(0, 0, 3)
	assert.WithinDuration(t, want, *ban.Until, time.Minute)
	assert.Equal(t, uint64(2), ban.UserID)
	assert.Equal(t, uint64(1), ban.ModeratorID)
}

func TestBanUserPermanent(t *testing.T) {
	f := newModerationFixture(t)

	ban, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "permanent"}))
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.Nil(t, ban.Until)

	stored, err := f.bans.GetActiveBan(context.Background(), 2, 1, time.Now().AddDate(10, 0, 0))
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestBanUserNoneWritesNothing(t *testing.T) {
	f := newModerationFixture(t)

	ban, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "none"}))
	require.NoError(t, err)
	assert.Nil(t, ban)
	assert.Empty(t, f.bans.bans)
}

func TestBanUserSelf(t *testing.T) {
	f := newModerationFixture(t)

	_, err := f.svc.BanUser(context.Background(), 1, banReq(1, dto.BanDurationDTO{Kind: "permanent"}))
	assert.ErrorIs(t, err, ErrUserBanSelf)
}

func TestBanUserNotModerator(t *testing.T) {
	f := newModerationFixture(t)

	_, err := f.svc.BanUser(context.Background(), 2, banReq(1, dto.BanDurationDTO{Kind: "permanent"}))
	assert.ErrorIs(t, err, ErrNotModerator)
}

func TestBanUserTargetModerator(t *testing.T) {
	f := newModerationFixture(t)
	require.NoError(t, f.spheres.AddRole(context.Background(), &model.SphereRole{SphereID: 1, UserID: 2}))

	_, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "permanent"}))
	assert.ErrorIs(t, err, ErrUserBanModerator)
}

func TestAuthorizeVoteSiteBan(t *testing.T) {
	f := newModerationFixture(t)
	f.users.users[2].Status = consts.UserStatusBanned

	err := f.svc.AuthorizeVote(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrUserBan)
}

func TestAuthorizeVoteSphereBan(t *testing.T) {
	f := newModerationFixture(t)
	_, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "timed", Days: 1}))
	require.NoError(t, err)

	err = f.svc.AuthorizeVote(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrUserBan)

	// 其他社区不受影响
	assert.NoError(t, f.svc.AuthorizeVote(context.Background(), 2, 99))
}

func TestAuthorizeVoteExpiredBan(t *testing.T) {
	f := newModerationFixture(t)
	until := time.Now().Add(-time.Hour)
	require.NoError(t, f.bans.CreateBan(context.Background(), &model.UserBan{
		UserID:      2,
		SphereID:    1,
		ModeratorID: 1,
		Until:       &until,
	}))

	assert.NoError(t, f.svc.AuthorizeVote(context.Background(), 2, 1))
}

func TestUnbanUser(t *testing.T) {
	f := newModerationFixture(t)
	ban, err := f.svc.BanUser(context.Background(), 1, banReq(2, dto.BanDurationDTO{Kind: "permanent"}))
	require.NoError(t, err)

	require.NoError(t, f.svc.UnbanUser(context.Background(), 1, 1, ban.ID))
	assert.NoError(t, f.svc.AuthorizeVote(context.Background(), 2, 1))
}
