package service

import (
	"context"
	"movie_discovery/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users     map[int64]*model.User
	createErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]*model.User{}}
}

func (f *fakeUserRepository) CreateUser(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.UserId = int64(len(f.users) + 1)
	f.users[user.UserId] = user
	return nil
}

func (f *fakeUserRepository) GetUserById(userId int64) (*model.User, error) {
	user, ok := f.users[userId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByUsername(username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateProfileImage(userId int64, imageUrl string) error {
	f.users[userId].ProfileImage = imageUrl
	return nil
}

func (f *fakeUserRepository) UpdateNotifToken(userId int64, notifToken string) error {
	f.users[userId].NotifToken = notifToken
	return nil
}

func (f *fakeUserRepository) GetActiveNotifUsers() ([]model.User, error) {
	res := make([]model.User, 0)
	for _, user := range f.users {
		if user.IsActive && user.NotifToken != "" {
			res = append(res, *user)
		}
	}
	return res, nil
}

func (f *fakeUserRepository) CountUsers() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepository) CountActiveUsers() (int64, error) {
	count := int64(0)
	for _, user := range f.users {
		if user.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepository) GetTopUsers(limit int) ([]model.TopUserRes, error) {
	return []model.TopUserRes{{Username: "testUser", Count: 3}}, nil
}

//------------------------------------------
//------------------------------------------

func TestGenerateAnalyticsReport(t *testing.T) {
	userRepo := newFakeUserRepository()
	userRepo.users[1] = &model.User{UserId: 1, Username: "testUser", IsActive: true}
	userRepo.users[2] = &model.User{UserId: 2, Username: "inactiveUser"}

	favoriteRepo := &fakeFavoriteRepository{
		favorites: []model.Favorite{{MovieId: 550, UserId: 1}},
	}
	cache := newFakeCacheService()
	svc := NewAdminService(userRepo, favoriteRepo, cache)

	report, err := svc.GenerateAnalyticsReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalUsers)
	assert.Equal(t, int64(1), report.ActiveUsers)
	assert.Equal(t, int64(1), report.TotalFavorites)
	assert.NotEmpty(t, report.GeneratedAt)

	// the generated report lands in the cache
	cached, err := cache.GetAnalyticsReportCache(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cached)
}

func TestGetAnalyticsReportMiss(t *testing.T) {
	svc := NewAdminService(newFakeUserRepository(), &fakeFavoriteRepository{}, newFakeCacheService())

	report, err := svc.GetAnalyticsReport(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestGetAnalyticsReportRoundTrip(t *testing.T) {
	userRepo := newFakeUserRepository()
	userRepo.users[1] = &model.User{UserId: 1, Username: "testUser", IsActive: true}
	cache := newFakeCacheService()
	svc := NewAdminService(userRepo, &fakeFavoriteRepository{}, cache)

	generated, err := svc.GenerateAnalyticsReport(context.Background())
	require.NoError(t, err)

	fetched, err := svc.GetAnalyticsReport(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, generated.TotalUsers, fetched.TotalUsers)
	assert.Equal(t, generated.GeneratedAt, fetched.GeneratedAt)
}
