package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_discovery/internal/client"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
)

type IMovieService interface {
	GetTrendingMovies(ctx context.Context, page int) (json.RawMessage, error)
	SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error)
	GetMovieDetails(ctx context.Context, movieId int64) (json.RawMessage, error)
	GetRecommendedMovies(ctx context.Context, movieId int64) (json.RawMessage, error)
	RefreshTrendingMovies(ctx context.Context, pages int) error
	CacheMovieDetails(ctx context.Context, movieId int64) error
}

type MovieService struct {
	tmdbClient client.ITmdbClient
	cache      ICacheService
	movieRepo  repository.IMovieRepository
}

func NewMovieService(tmdbClient client.ITmdbClient, cache ICacheService, movieRepo repository.IMovieRepository) *MovieService {
	return &MovieService{
		tmdbClient: tmdbClient,
		cache:      cache,
		movieRepo:  movieRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetTrendingMovies(ctx context.Context, page int) (json.RawMessage, error) {
	key := TrendingMoviesCacheKey(page)
	cached, err := m.cache.GetMovieCache(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		m.cache.CountCacheHit(ctx)
		return cached, nil
	}
	m.cache.CountCacheMiss(ctx)

	data, err := m.tmdbClient.GetTrendingMovies(page)
	if err != nil {
		return nil, err
	}

	_ = m.cache.SetMovieCache(ctx, key, data, TrendingCacheDuration)
	return data, nil
}

func (m *MovieService) SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error) {
	return m.tmdbClient.SearchMovies(query, page)
}

func (m *MovieService) GetMovieDetails(ctx context.Context, movieId int64) (json.RawMessage, error) {
	key := MovieDetailsCacheKey(movieId)
	cached, err := m.cache.GetMovieCache(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		m.cache.CountCacheHit(ctx)
		return cached, nil
	}
	m.cache.CountCacheMiss(ctx)

	data, err := m.tmdbClient.GetMovieDetails(movieId)
	if err != nil {
		if errors.Is(err, client.ErrMovieNotFound) {
			return nil, err
		}
		// tmdb unreachable, serve the mongodb mirror if we have one
		if mirrored := m.mirroredMovieDetail(movieId); mirrored != nil {
			return mirrored, nil
		}
		return nil, err
	}

	_ = m.cache.SetMovieCache(ctx, key, data, MovieDetailsCacheDuration)
	m.mirrorMovieDetail(movieId, data)
	return data, nil
}

func (m *MovieService) GetRecommendedMovies(ctx context.Context, movieId int64) (json.RawMessage, error) {
	key := RecommendedMoviesCacheKey(movieId)
	cached, err := m.cache.GetMovieCache(ctx, key)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		m.cache.CountCacheHit(ctx)
		return cached, nil
	}
	m.cache.CountCacheMiss(ctx)

	data, err := m.tmdbClient.GetRecommendedMovies(movieId)
	if err != nil {
		return nil, err
	}

	_ = m.cache.SetMovieCache(ctx, key, data, RecommendationsCacheDuration)
	return data, nil
}

//------------------------------------------
//------------------------------------------

// RefreshTrendingMovies refetches the first trending pages and resets
// their expiry, regardless of any cached copy.
func (m *MovieService) RefreshTrendingMovies(ctx context.Context, pages int) error {
	for page := 1; page <= pages; page++ {
		data, err := m.tmdbClient.GetTrendingMovies(page)
		if err != nil {
			return err
		}
		err = m.cache.SetMovieCache(ctx, TrendingMoviesCacheKey(page), data, TrendingCacheDuration)
		if err != nil {
			return err
		}
	}
	return nil
}

// CacheMovieDetails warms the details cache and mongodb mirror for a
// single movie, the unit of work for api-queue tasks.
func (m *MovieService) CacheMovieDetails(ctx context.Context, movieId int64) error {
	data, err := m.tmdbClient.GetMovieDetails(movieId)
	if err != nil {
		return err
	}

	err = m.cache.SetMovieCache(ctx, MovieDetailsCacheKey(movieId), data, MovieDetailsCacheDuration)
	if err != nil {
		return err
	}

	m.mirrorMovieDetail(movieId, data)
	return nil
}

func (m *MovieService) mirroredMovieDetail(movieId int64) json.RawMessage {
	doc, err := m.movieRepo.GetMovieData(movieId)
	if err != nil || doc == nil {
		return nil
	}
	data, err := json.Marshal(doc.Detail)
	if err != nil {
		return nil
	}
	return data
}

func (m *MovieService) mirrorMovieDetail(movieId int64, data []byte) {
	var detail model.MovieDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		errorMessage := fmt.Sprintf("Error decoding movie detail %v: %v", movieId, err)
		errorHandler.SaveError(errorMessage, err)
		return
	}
	if detail.MovieId == 0 {
		detail.MovieId = movieId
	}
	if err := m.movieRepo.UpsertMovieData(&detail); err != nil {
		errorMessage := fmt.Sprintf("Error mirroring movie detail %v: %v", movieId, err)
		errorHandler.SaveError(errorMessage, err)
	}
}
