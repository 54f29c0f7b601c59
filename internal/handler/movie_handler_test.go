package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"movie_discovery/internal/client"
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/util"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieService struct {
	detailsErr error
}

func (f *fakeMovieService) GetTrendingMovies(ctx context.Context, page int) (json.RawMessage, error) {
	return json.RawMessage(`{"page":1,"results":[]}`), nil
}

func (f *fakeMovieService) SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error) {
	return json.RawMessage(`{"results":[]}`), nil
}

func (f *fakeMovieService) GetMovieDetails(ctx context.Context, movieId int64) (json.RawMessage, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return json.RawMessage(`{"id":550}`), nil
}

func (f *fakeMovieService) GetRecommendedMovies(ctx context.Context, movieId int64) (json.RawMessage, error) {
	return json.RawMessage(`{"results":[]}`), nil
}

func (f *fakeMovieService) RefreshTrendingMovies(ctx context.Context, pages int) error {
	return nil
}

func (f *fakeMovieService) CacheMovieDetails(ctx context.Context, movieId int64) error {
	return nil
}

type fakeFavoriteService struct {
	addErr    error
	removeErr error
}

func (f *fakeFavoriteService) GetFavorites(userId int64, page int, limit int) (*model.FavoritesListRes, error) {
	return &model.FavoritesListRes{Favorites: []model.Favorite{}, Page: page}, nil
}

func (f *fakeFavoriteService) AddFavorite(userId int64, addVM *model.AddFavoriteRequest) (*model.Favorite, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &model.Favorite{UserId: userId, MovieId: addVM.MovieId, Title: addVM.Title}, nil
}

func (f *fakeFavoriteService) RemoveFavorite(userId int64, movieId int64) error {
	return f.removeErr
}

func fakeAuthMiddleware(c *fiber.Ctx) error {
	c.Locals("jwtUserData", &util.MyJwtClaims{UserId: 1, Username: "testUser"})
	return c.Next()
}

func setupMovieApp(movieSvc service.IMovieService, favoriteSvc service.IFavoriteService) *fiber.App {
	app := fiber.New()
	h := NewMovieHandler(movieSvc, favoriteSvc)
	app.Get("/v1/movie/trending", h.GetTrendingMovies)
	app.Get("/v1/movie/search", h.SearchMovies)
	app.Get("/v1/movie/details/:movieId", h.GetMovieDetails)
	app.Get("/v1/movie/favorites", fakeAuthMiddleware, h.GetFavorites)
	app.Post("/v1/movie/favorites", fakeAuthMiddleware, h.AddFavorite)
	app.Delete("/v1/movie/favorites/:movieId", fakeAuthMiddleware, h.RemoveFavorite)
	return app
}

//------------------------------------------
//------------------------------------------

func TestGetTrendingMoviesHandler(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{})

	req := httptest.NewRequest("GET", "/v1/movie/trending?page=1", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), `"results"`)
}

func TestSearchMoviesHandlerRequiresQuery(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{})

	req := httptest.NewRequest("GET", "/v1/movie/search", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestGetMovieDetailsHandlerNotFound(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{detailsErr: client.ErrMovieNotFound}, &fakeFavoriteService{})

	req := httptest.NewRequest("GET", "/v1/movie/details/999999", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestGetMovieDetailsHandlerBadId(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{})

	req := httptest.NewRequest("GET", "/v1/movie/details/abc", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestAddFavoriteHandler(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{})

	payload, _ := json.Marshal(model.AddFavoriteRequest{MovieId: 550, Title: "Fight Club"})
	req := httptest.NewRequest("POST", "/v1/movie/favorites", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
}

func TestAddFavoriteHandlerConflict(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{addErr: service.ErrAlreadyFavorite})

	payload, _ := json.Marshal(model.AddFavoriteRequest{MovieId: 550, Title: "Fight Club"})
	req := httptest.NewRequest("POST", "/v1/movie/favorites", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
}

func TestRemoveFavoriteHandlerNotFound(t *testing.T) {
	app := setupMovieApp(&fakeMovieService{}, &fakeFavoriteService{removeErr: service.ErrFavoriteNotFound})

	req := httptest.NewRequest("DELETE", "/v1/movie/favorites/550", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
