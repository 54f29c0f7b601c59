package service

import (
	"errors"
	"fmt"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorite  = errors.New("movie already in favorites")
	ErrFavoriteNotFound = errors.New("movie not found in favorites")
)

type IFavoriteService interface {
	GetFavorites(userId int64, page int, limit int) (*model.FavoritesListRes, error)
	AddFavorite(userId int64, addVM *model.AddFavoriteRequest) (*model.Favorite, error)
	RemoveFavorite(userId int64, movieId int64) error
}

type FavoriteService struct {
	favoriteRepo repository.IFavoriteRepository
	tasks        ITaskPublisher
}

func NewFavoriteService(favoriteRepo repository.IFavoriteRepository, tasks ITaskPublisher) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		tasks:        tasks,
	}
}

//------------------------------------------
//------------------------------------------

func (s *FavoriteService) GetFavorites(userId int64, page int, limit int) (*model.FavoritesListRes, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	favorites, err := s.favoriteRepo.GetUserFavorites(userId, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.favoriteRepo.CountUserFavorites(userId)
	if err != nil {
		return nil, err
	}

	return &model.FavoritesListRes{
		Favorites: favorites,
		Page:      page,
		Total:     total,
	}, nil
}

func (s *FavoriteService) AddFavorite(userId int64, addVM *model.AddFavoriteRequest) (*model.Favorite, error) {
	favorite := model.Favorite{
		UserId:      userId,
		MovieId:     addVM.MovieId,
		Title:       addVM.Title,
		PosterPath:  addVM.PosterPath,
		Overview:    addVM.Overview,
		ReleaseDate: addVM.ReleaseDate,
		VoteAverage: addVM.VoteAverage,
	}

	err := s.favoriteRepo.AddFavorite(&favorite)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}

	s.enqueueFavoriteTasks(userId, &favorite)

	return &favorite, nil
}

func (s *FavoriteService) RemoveFavorite(userId int64, movieId int64) error {
	removed, err := s.favoriteRepo.RemoveFavorite(userId, movieId)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

// enqueueFavoriteTasks fires the favorite-added push and warms the
// details cache for the favorited movie. Both are fire-and-forget.
func (s *FavoriteService) enqueueFavoriteTasks(userId int64, favorite *model.Favorite) {
	err := s.tasks.EnqueueTask(model.TaskSendFavoriteNotification, model.FavoriteNotificationPayload{
		UserId:     userId,
		MovieTitle: favorite.Title,
	})
	if err != nil {
		errorMessage := fmt.Sprintf("Error enqueueing favorite notification: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}

	err = s.tasks.EnqueueTask(model.TaskFetchMovieDetails, model.MovieIdPayload{
		MovieId: favorite.MovieId,
	})
	if err != nil {
		errorMessage := fmt.Sprintf("Error enqueueing movie details fetch: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}
