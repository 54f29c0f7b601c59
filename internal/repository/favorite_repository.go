package repository

import (
	"movie_discovery/model"

	"gorm.io/gorm"
)

type IFavoriteRepository interface {
	AddFavorite(favorite *model.Favorite) error
	RemoveFavorite(userId int64, movieId int64) (int64, error)
	GetUserFavorites(userId int64, skip int, limit int) ([]model.Favorite, error)
	CountUserFavorites(userId int64) (int64, error)
	CountFavorites() (int64, error)
	GetAverageRating() (float64, error)
	GetTopMovies(limit int) ([]model.TopMovieRes, error)
}

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *FavoriteRepository) AddFavorite(favorite *model.Favorite) error {
	return r.db.Create(favorite).Error
}

// RemoveFavorite deletes the user's favorite and reports affected rows
// so callers can distinguish a missing favorite.
func (r *FavoriteRepository) RemoveFavorite(userId int64, movieId int64) (int64, error) {
	result := r.db.
		Where("\"userId\" = ? AND \"movieId\" = ?", userId, movieId).
		Delete(&model.Favorite{})
	return result.RowsAffected, result.Error
}

func (r *FavoriteRepository) GetUserFavorites(userId int64, skip int, limit int) ([]model.Favorite, error) {
	var result []model.Favorite
	err := r.db.
		Model(&model.Favorite{}).
		Where("\"userId\" = ?", userId).
		Order("\"addedAt\" DESC").
		Offset(skip).
		Limit(limit).
		Find(&result).
		Error
	return result, err
}

func (r *FavoriteRepository) CountUserFavorites(userId int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).
		Where("\"userId\" = ?", userId).
		Count(&count).
		Error
	return count, err
}

//------------------------------------------
//------------------------------------------

func (r *FavoriteRepository) CountFavorites() (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Count(&count).Error
	return count, err
}

func (r *FavoriteRepository) GetAverageRating() (float64, error) {
	var result struct {
		Avg float64 `gorm:"column:avg"`
	}
	err := r.db.Model(&model.Favorite{}).
		Select("COALESCE(AVG(\"voteAverage\"), 0) AS avg").
		Scan(&result).
		Error
	return result.Avg, err
}

func (r *FavoriteRepository) GetTopMovies(limit int) ([]model.TopMovieRes, error) {
	result := []model.TopMovieRes{}

	queryStr := `
		SELECT "movieId", title, COUNT(id) AS count
		FROM "Favorite"
		GROUP BY "movieId", title
		ORDER BY count DESC
		LIMIT @lim;`

	err := r.db.Raw(queryStr,
		map[string]interface{}{
			"lim": limit,
		}).
		Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return result, nil
}
