package handler

import (
	"errors"
	"movie_discovery/internal/client"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"
	"movie_discovery/util"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	GetTrendingMovies(c *fiber.Ctx) error
	SearchMovies(c *fiber.Ctx) error
	GetMovieDetails(c *fiber.Ctx) error
	GetRecommendedMovies(c *fiber.Ctx) error
	GetFavorites(c *fiber.Ctx) error
	AddFavorite(c *fiber.Ctx) error
	RemoveFavorite(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService    service.IMovieService
	favoriteService service.IFavoriteService
}

func NewMovieHandler(movieService service.IMovieService, favoriteService service.IFavoriteService) *MovieHandler {
	return &MovieHandler{
		movieService:    movieService,
		favoriteService: favoriteService,
	}
}

//------------------------------------------
//------------------------------------------

// GetTrendingMovies godoc
//
//	@Summary		Trending Movies
//	@Description	get this week's trending movies, cached for 1 hour.
//	@Tags			Movie
//	@Param			page	query		int	false	"page number, starts from 1"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		502		{object}	response.ResponseErrorModel
//	@Router			/v1/movie/trending [get]
func (h *MovieHandler) GetTrendingMovies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	result, err := h.movieService.GetTrendingMovies(c.Context(), page)
	if err != nil {
		return response.ResponseError(c, response.MoviesNotFound, fiber.StatusBadGateway)
	}

	return response.ResponseOKWithData(c, result)
}

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search movies by title, always served fresh.
//	@Tags			Movie
//	@Param			query	query		string	true	"search query"
//	@Param			page	query		int		false	"page number, starts from 1"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400,502	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return response.ResponseError(c, response.QueryRequired, fiber.StatusBadRequest)
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	result, err := h.movieService.SearchMovies(c.Context(), query, page)
	if err != nil {
		return response.ResponseError(c, response.MoviesNotFound, fiber.StatusBadGateway)
	}

	return response.ResponseOKWithData(c, result)
}

// GetMovieDetails godoc
//
//	@Summary		Movie Details
//	@Description	get full movie details, cached for 24 hours.
//	@Tags			Movie
//	@Param			movieId	path		int	true	"tmdb movie id"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/details/{movieId} [get]
func (h *MovieHandler) GetMovieDetails(c *fiber.Ctx) error {
	movieId, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.movieService.GetMovieDetails(c.Context(), movieId)
	if err != nil {
		if errors.Is(err, client.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

// GetRecommendedMovies godoc
//
//	@Summary		Recommended Movies
//	@Description	get movies recommended for a movie, cached for 2 hours.
//	@Tags			Movie
//	@Param			movieId	path		int	true	"tmdb movie id"
//	@Success		200		{object}	response.ResponseOKWithDataModel
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/recommendations/{movieId} [get]
func (h *MovieHandler) GetRecommendedMovies(c *fiber.Ctx) error {
	movieId, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.movieService.GetRecommendedMovies(c.Context(), movieId)
	if err != nil {
		if errors.Is(err, client.ErrMovieNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

//------------------------------------------
//------------------------------------------

// GetFavorites godoc
//
//	@Summary		Favorites
//	@Description	list the current user's favorite movies, newest first.
//	@Tags			Favorite
//	@Param			page	query		int	false	"page number, starts from 1"
//	@Param			limit	query		int	false	"page size, default 20"
//	@Success		200		{object}	model.FavoritesListRes
//	@Failure		401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/favorites [get]
func (h *MovieHandler) GetFavorites(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	result, err := h.favoriteService.GetFavorites(jwtUserData.UserId, page, limit)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, result)
}

// AddFavorite godoc
//
//	@Summary		Add Favorite
//	@Description	add a movie to the current user's favorites.
//	@Tags			Favorite
//	@Param			movie		body		model.AddFavoriteRequest	true	"movie snapshot data"
//	@Success		201			{object}	model.Favorite
//	@Failure		400,401,409	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/favorites [post]
func (h *MovieHandler) AddFavorite(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)

	var addVM model.AddFavoriteRequest
	if err := c.BodyParser(&addVM); err != nil || addVM.MovieId < 1 || addVM.Title == "" {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := h.favoriteService.AddFavorite(jwtUserData.UserId, &addVM)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyFavorite) {
			return response.ResponseError(c, response.AlreadyFavorite, fiber.StatusConflict)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, result)
}

// RemoveFavorite godoc
//
//	@Summary		Remove Favorite
//	@Description	remove a movie from the current user's favorites.
//	@Tags			Favorite
//	@Param			movieId	path		int	true	"tmdb movie id"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/movie/favorites/{movieId} [delete]
func (h *MovieHandler) RemoveFavorite(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	movieId, err := strconv.ParseInt(c.Params("movieId"), 10, 64)
	if err != nil || movieId < 1 {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err = h.favoriteService.RemoveFavorite(jwtUserData.UserId, movieId)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			return response.ResponseError(c, response.FavoriteNotFound, fiber.StatusNotFound)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}
