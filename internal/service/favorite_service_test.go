package service

import (
	"movie_discovery/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFavoriteRepository struct {
	favorites  []model.Favorite
	addErr     error
	removedN   int64
	removedErr error
}

func (f *fakeFavoriteRepository) AddFavorite(favorite *model.Favorite) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteRepository) RemoveFavorite(userId int64, movieId int64) (int64, error) {
	return f.removedN, f.removedErr
}

func (f *fakeFavoriteRepository) GetUserFavorites(userId int64, skip int, limit int) ([]model.Favorite, error) {
	if skip >= len(f.favorites) {
		return []model.Favorite{}, nil
	}
	end := skip + limit
	if end > len(f.favorites) {
		end = len(f.favorites)
	}
	return f.favorites[skip:end], nil
}

func (f *fakeFavoriteRepository) CountUserFavorites(userId int64) (int64, error) {
	return int64(len(f.favorites)), nil
}

func (f *fakeFavoriteRepository) CountFavorites() (int64, error) {
	return int64(len(f.favorites)), nil
}

func (f *fakeFavoriteRepository) GetAverageRating() (float64, error) {
	return 0, nil
}

func (f *fakeFavoriteRepository) GetTopMovies(limit int) ([]model.TopMovieRes, error) {
	return nil, nil
}

type fakeTaskPublisher struct {
	enqueued []string
}

func (f *fakeTaskPublisher) EnqueueTask(name string, payload interface{}) error {
	f.enqueued = append(f.enqueued, name)
	return nil
}

//------------------------------------------
//------------------------------------------

func TestAddFavorite(t *testing.T) {
	repo := &fakeFavoriteRepository{}
	publisher := &fakeTaskPublisher{}
	svc := NewFavoriteService(repo, publisher)

	favorite, err := svc.AddFavorite(1, &model.AddFavoriteRequest{
		MovieId:     550,
		Title:       "Fight Club",
		VoteAverage: 8.4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(550), favorite.MovieId)
	assert.Equal(t, int64(1), favorite.UserId)

	// favorite push and details warmup get queued
	assert.Contains(t, publisher.enqueued, model.TaskSendFavoriteNotification)
	assert.Contains(t, publisher.enqueued, model.TaskFetchMovieDetails)
}

func TestAddFavoriteDuplicate(t *testing.T) {
	repo := &fakeFavoriteRepository{addErr: gorm.ErrDuplicatedKey}
	publisher := &fakeTaskPublisher{}
	svc := NewFavoriteService(repo, publisher)

	_, err := svc.AddFavorite(1, &model.AddFavoriteRequest{MovieId: 550, Title: "Fight Club"})
	assert.ErrorIs(t, err, ErrAlreadyFavorite)
	assert.Empty(t, publisher.enqueued)
}

func TestRemoveFavorite(t *testing.T) {
	repo := &fakeFavoriteRepository{removedN: 1}
	svc := NewFavoriteService(repo, &fakeTaskPublisher{})

	err := svc.RemoveFavorite(1, 550)
	assert.NoError(t, err)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	repo := &fakeFavoriteRepository{removedN: 0}
	svc := NewFavoriteService(repo, &fakeTaskPublisher{})

	err := svc.RemoveFavorite(1, 550)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestGetFavoritesPagination(t *testing.T) {
	repo := &fakeFavoriteRepository{}
	for i := 0; i < 25; i++ {
		repo.favorites = append(repo.favorites, model.Favorite{MovieId: int64(i + 1), UserId: 1})
	}
	svc := NewFavoriteService(repo, &fakeTaskPublisher{})

	res, err := svc.GetFavorites(1, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, int64(25), res.Total)
	assert.Len(t, res.Favorites, 5)
}

func TestGetFavoritesClampsBadParams(t *testing.T) {
	repo := &fakeFavoriteRepository{}
	svc := NewFavoriteService(repo, &fakeTaskPublisher{})

	res, err := svc.GetFavorites(1, -3, 5000)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
}
