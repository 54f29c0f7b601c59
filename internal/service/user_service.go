package service

import (
	"errors"
	"mime/multipart"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	"movie_discovery/util"
	"time"

	"github.com/badoux/checkmail"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExist = errors.New("username already exists")
	ErrEmailAlreadyExist    = errors.New("email already exists")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrShortPassword        = errors.New("password too short")
	ErrPasswordsNotMatch    = errors.New("passwords do not match")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

type IUserService interface {
	Signup(registerVM *model.RegisterRequest) (*model.UserAuthRes, error)
	Login(loginVM *model.LoginRequest) (*model.UserAuthRes, error)
	RefreshTokens(userId int64, username string, oldRefreshToken string) (*model.TokensRes, error)
	Logout(refreshToken string) error
	GetProfile(userId int64) (*model.UserViewModel, error)
	SetNotifToken(userId int64, notifToken string) error
	UploadProfileImage(userId int64, fileHeader *multipart.FileHeader) (string, error)
}

type UserService struct {
	userRepo     repository.IUserRepository
	imageService IImageService
}

func NewUserService(userRepo repository.IUserRepository, imageService IImageService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		imageService: imageService,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) Signup(registerVM *model.RegisterRequest) (*model.UserAuthRes, error) {
	if err := checkmail.ValidateFormat(registerVM.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(registerVM.Password) < 8 {
		return nil, ErrShortPassword
	}
	if registerVM.Password != registerVM.ConfirmPassword {
		return nil, ErrPasswordsNotMatch
	}

	hash, err := util.HashPassword(registerVM.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:  registerVM.Username,
		Email:     registerVM.Email,
		Password:  hash,
		FirstName: registerVM.FirstName,
		LastName:  registerVM.LastName,
		IsActive:  true,
	}

	err = s.userRepo.CreateUser(&user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, findErr := s.userRepo.GetUserByUsername(registerVM.Username); findErr == nil && existing != nil {
				return nil, ErrUsernameAlreadyExist
			}
			return nil, ErrEmailAlreadyExist
		}
		return nil, err
	}

	tokens, err := util.CreateTokens(user.UserId, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.UserAuthRes{
		User: user.ViewModel(),
		Tokens: model.TokensRes{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresAt:    tokens.ExpiresAt,
		},
	}, nil
}

func (s *UserService) Login(loginVM *model.LoginRequest) (*model.UserAuthRes, error) {
	user, err := s.userRepo.GetUserByUsername(loginVM.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.CheckPassword(user.Password, loginVM.Password) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := util.CreateTokens(user.UserId, user.Username)
	if err != nil {
		return nil, err
	}

	return &model.UserAuthRes{
		User: user.ViewModel(),
		Tokens: model.TokensRes{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresAt:    tokens.ExpiresAt,
		},
	}, nil
}

//------------------------------------------
//------------------------------------------

// RefreshTokens rotates the token pair and blacklists the consumed
// refresh token for the rest of its lifetime.
func (s *UserService) RefreshTokens(userId int64, username string, oldRefreshToken string) (*model.TokensRes, error) {
	tokens, err := util.CreateTokens(userId, username)
	if err != nil {
		return nil, err
	}

	_ = SetJwtDataCache(oldRefreshToken, "blacklisted", refreshTokenBlacklistDuration())

	return &model.TokensRes{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	}, nil
}

func (s *UserService) Logout(refreshToken string) error {
	return SetJwtDataCache(refreshToken, "blacklisted", refreshTokenBlacklistDuration())
}

// refreshTokenBlacklistDuration keeps blacklist entries alive at least
// as long as the refresh tokens they block.
func refreshTokenBlacklistDuration() time.Duration {
	return time.Duration(configs.GetConfigs().RefreshTokenExpireDay) * 24 * time.Hour
}

//------------------------------------------
//------------------------------------------

func (s *UserService) GetProfile(userId int64) (*model.UserViewModel, error) {
	user, err := s.userRepo.GetUserById(userId)
	if err != nil {
		return nil, err
	}
	profile := user.ViewModel()
	return &profile, nil
}

func (s *UserService) SetNotifToken(userId int64, notifToken string) error {
	return s.userRepo.UpdateNotifToken(userId, notifToken)
}

func (s *UserService) UploadProfileImage(userId int64, fileHeader *multipart.FileHeader) (string, error) {
	imageUrl, err := s.imageService.SaveProfileImage(fileHeader)
	if err != nil {
		return "", err
	}

	err = s.userRepo.UpdateProfileImage(userId, imageUrl)
	if err != nil {
		return "", err
	}
	return imageUrl, nil
}
