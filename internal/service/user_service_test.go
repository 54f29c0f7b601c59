package service

import (
	"movie_discovery/configs"
	"movie_discovery/model"
	"movie_discovery/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthConfigs(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	configs.LoadEnvVariables()
}

func TestSignupValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepository(), nil)

	_, err := svc.Signup(&model.RegisterRequest{Username: "u", Email: "not-an-email", Password: "longEnough1", ConfirmPassword: "longEnough1"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Signup(&model.RegisterRequest{Username: "u", Email: "u@test.com", Password: "short", ConfirmPassword: "short"})
	assert.ErrorIs(t, err, ErrShortPassword)

	_, err = svc.Signup(&model.RegisterRequest{Username: "u", Email: "u@test.com", Password: "longEnough1", ConfirmPassword: "different1"})
	assert.ErrorIs(t, err, ErrPasswordsNotMatch)
}

func TestSignupDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users[1] = &model.User{UserId: 1, Username: "testUser", Email: "other@test.com"}
	repo.createErr = gorm.ErrDuplicatedKey
	svc := NewUserService(repo, nil)

	_, err := svc.Signup(&model.RegisterRequest{
		Username:        "testUser",
		Email:           "new@test.com",
		Password:        "longEnough1",
		ConfirmPassword: "longEnough1",
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExist)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users[1] = &model.User{UserId: 1, Username: "otherUser", Email: "test@test.com"}
	repo.createErr = gorm.ErrDuplicatedKey
	svc := NewUserService(repo, nil)

	_, err := svc.Signup(&model.RegisterRequest{
		Username:        "newUser",
		Email:           "test@test.com",
		Password:        "longEnough1",
		ConfirmPassword: "longEnough1",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExist)
}

func TestSignupAndLogin(t *testing.T) {
	setupAuthConfigs(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, nil)

	res, err := svc.Signup(&model.RegisterRequest{
		Username:        "testUser",
		Email:           "test@test.com",
		Password:        "longEnough1",
		ConfirmPassword: "longEnough1",
	})
	require.NoError(t, err)
	assert.Equal(t, "testUser", res.User.Username)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)

	// stored password is hashed
	stored, err := repo.GetUserByUsername("testUser")
	require.NoError(t, err)
	assert.NotEqual(t, "longEnough1", stored.Password)
	assert.True(t, util.CheckPassword(stored.Password, "longEnough1"))

	loginRes, err := svc.Login(&model.LoginRequest{Username: "testUser", Password: "longEnough1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.UserId, loginRes.User.UserId)
}

func TestLoginWrongPassword(t *testing.T) {
	setupAuthConfigs(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, nil)

	_, err := svc.Signup(&model.RegisterRequest{
		Username:        "testUser",
		Email:           "test@test.com",
		Password:        "longEnough1",
		ConfirmPassword: "longEnough1",
	})
	require.NoError(t, err)

	_, err = svc.Login(&model.LoginRequest{Username: "testUser", Password: "wrongPassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&model.LoginRequest{Username: "unknownUser", Password: "longEnough1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenBlacklistDuration(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_EXPIRE_DAY", "45")
	configs.LoadEnvVariables()

	// blacklist entries must outlive the refresh tokens they block
	assert.Equal(t, 45*24*time.Hour, refreshTokenBlacklistDuration())
}

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepository()
	repo.users[7] = &model.User{UserId: 7, Username: "testUser", Email: "test@test.com", Bio: "hi"}
	svc := NewUserService(repo, nil)

	profile, err := svc.GetProfile(7)
	require.NoError(t, err)
	assert.Equal(t, "testUser", profile.Username)
	assert.Equal(t, "hi", profile.Bio)
}
