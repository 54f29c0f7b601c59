package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	signupErr error
	loginErr  error
}

func (f *fakeUserService) Signup(registerVM *model.RegisterRequest) (*model.UserAuthRes, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &model.UserAuthRes{User: model.UserViewModel{UserId: 1, Username: registerVM.Username}}, nil
}

func (f *fakeUserService) Login(loginVM *model.LoginRequest) (*model.UserAuthRes, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &model.UserAuthRes{User: model.UserViewModel{UserId: 1, Username: loginVM.Username}}, nil
}

func (f *fakeUserService) RefreshTokens(userId int64, username string, oldRefreshToken string) (*model.TokensRes, error) {
	return &model.TokensRes{}, nil
}

func (f *fakeUserService) Logout(refreshToken string) error {
	return nil
}

func (f *fakeUserService) GetProfile(userId int64) (*model.UserViewModel, error) {
	return &model.UserViewModel{UserId: userId}, nil
}

func (f *fakeUserService) SetNotifToken(userId int64, notifToken string) error {
	return nil
}

func (f *fakeUserService) UploadProfileImage(userId int64, fileHeader *multipart.FileHeader) (string, error) {
	return "", nil
}

func setupUserApp(userSvc service.IUserService) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(userSvc)
	app.Post("/v1/user/signup", h.Signup)
	app.Post("/v1/user/login", h.Login)
	return app
}

func postJson(t *testing.T, app *fiber.App, path string, payload interface{}) int {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res.StatusCode
}

//------------------------------------------
//------------------------------------------

func TestSignupHandler(t *testing.T) {
	app := setupUserApp(&fakeUserService{})

	status := postJson(t, app, "/v1/user/signup", model.RegisterRequest{
		Username: "testUser",
		Email:    "test@test.com",
		Password: "longEnough1",
	})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestSignupHandlerDuplicate(t *testing.T) {
	registerVM := model.RegisterRequest{
		Username: "testUser",
		Email:    "test@test.com",
		Password: "longEnough1",
	}

	// signing up again with a taken username or email conflicts
	app := setupUserApp(&fakeUserService{signupErr: service.ErrUsernameAlreadyExist})
	assert.Equal(t, fiber.StatusConflict, postJson(t, app, "/v1/user/signup", registerVM))

	app = setupUserApp(&fakeUserService{signupErr: service.ErrEmailAlreadyExist})
	assert.Equal(t, fiber.StatusConflict, postJson(t, app, "/v1/user/signup", registerVM))
}

func TestSignupHandlerValidation(t *testing.T) {
	registerVM := model.RegisterRequest{
		Username: "testUser",
		Email:    "bad-email",
		Password: "longEnough1",
	}

	app := setupUserApp(&fakeUserService{signupErr: service.ErrInvalidEmail})
	assert.Equal(t, fiber.StatusBadRequest, postJson(t, app, "/v1/user/signup", registerVM))

	app = setupUserApp(&fakeUserService{signupErr: service.ErrShortPassword})
	assert.Equal(t, fiber.StatusBadRequest, postJson(t, app, "/v1/user/signup", registerVM))
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	app := setupUserApp(&fakeUserService{loginErr: service.ErrInvalidCredentials})

	status := postJson(t, app, "/v1/user/login", model.LoginRequest{
		Username: "testUser",
		Password: "wrongPassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
