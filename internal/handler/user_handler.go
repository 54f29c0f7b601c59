package handler

import (
	"errors"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"
	"movie_discovery/util"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	GetToken(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	GetProfile(c *fiber.Ctx) error
	SetNotifToken(c *fiber.Ctx) error
	UploadProfileImage(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	register a new user, returns user data and token pair.
//	@Tags			User-Auth
//	@Param			user	body		model.RegisterRequest	true	"user registration data"
//	@Success		201		{object}	model.UserAuthRes
//	@Failure		400,409	{object}	response.ResponseErrorModel
//	@Router			/v1/user/signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var registerVM model.RegisterRequest
	if err := c.BodyParser(&registerVM); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if registerVM.Username == "" || registerVM.Email == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.Signup(&registerVM)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			return response.ResponseError(c, response.InvalidEmail, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrShortPassword):
			return response.ResponseError(c, response.ShortPassword, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrPasswordsNotMatch):
			return response.ResponseError(c, response.PassNotConfirmed, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrUsernameAlreadyExist):
			return response.ResponseError(c, response.UsernameAlreadyExist, fiber.StatusConflict)
		case errors.Is(err, service.ErrEmailAlreadyExist):
			return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, result)
}

// Login godoc
//
//	@Summary		Login
//	@Description	login with username and password, returns user data and token pair.
//	@Tags			User-Auth
//	@Param			user	body		model.LoginRequest	true	"user credentials"
//	@Success		200		{object}	model.UserAuthRes
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Router			/v1/user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var loginVM model.LoginRequest
	if err := c.BodyParser(&loginVM); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if loginVM.Username == "" || loginVM.Password == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.userService.Login(&loginVM)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.ResponseError(c, response.UserPassNotMatch, fiber.StatusUnauthorized)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

// GetToken godoc
//
//	@Summary		Get Token
//	@Description	rotate the token pair using the refresh token.
//	@Tags			User-Auth
//	@Success		200	{object}	model.TokensRes
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/getToken [put]
func (h *UserHandler) GetToken(c *fiber.Ctx) error {
	refreshToken := c.Locals("refreshToken").(string)
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	result, err := h.userService.RefreshTokens(jwtUserData.UserId, jwtUserData.Username, refreshToken)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	blacklist the refresh token of the current session.
//	@Tags			User-Auth
//	@Success		200	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/logout [put]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Locals("refreshToken").(string)

	err := h.userService.Logout(refreshToken)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

// GetProfile godoc
//
//	@Summary		Get Profile
//	@Description	get the profile of the current user.
//	@Tags			User-Profile
//	@Success		200		{object}	model.UserViewModel
//	@Failure		401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	result, err := h.userService.GetProfile(jwtUserData.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

// SetNotifToken godoc
//
//	@Summary		Set Notification Token
//	@Description	register the fcm device token used for pushes.
//	@Tags			User-Profile
//	@Param			token	body		model.NotifTokenRequest	true	"fcm device token"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/notifToken [post]
func (h *UserHandler) SetNotifToken(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var tokenVM model.NotifTokenRequest
	if err := c.BodyParser(&tokenVM); err != nil || tokenVM.NotifToken == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err := h.userService.SetNotifToken(jwtUserData.UserId, tokenVM.NotifToken)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}

// UploadProfileImage godoc
//
//	@Summary		Upload Profile Image
//	@Description	upload a profile image, stored resized as webp.
//	@Tags			User-Profile
//	@Param			profileImage	formData	file	true	"profile image file"
//	@Success		200				{object}	response.ResponseOKWithDataModel
//	@Failure		400,401			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/user/profileImage [post]
func (h *UserHandler) UploadProfileImage(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	imageUrl, err := h.userService.UploadProfileImage(jwtUserData.UserId, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageTooLarge):
			return response.ResponseError(c, response.ExceedProfileImageSize, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidImageType):
			return response.ResponseError(c, response.InvalidProfileImageType, fiber.StatusBadRequest)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, fiber.Map{"profileImage": imageUrl})
}
