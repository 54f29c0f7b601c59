package service

import (
	"context"
	"encoding/json"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	"time"
)

type IAdminService interface {
	GenerateAnalyticsReport(ctx context.Context) (*model.AnalyticsReport, error)
	GetAnalyticsReport(ctx context.Context) (*model.AnalyticsReport, error)
}

type AdminService struct {
	userRepo     repository.IUserRepository
	favoriteRepo repository.IFavoriteRepository
	cache        ICacheService
}

func NewAdminService(userRepo repository.IUserRepository, favoriteRepo repository.IFavoriteRepository, cache ICacheService) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

//------------------------------------------
//------------------------------------------

// GenerateAnalyticsReport aggregates usage metrics and caches the
// result for the dashboard endpoint.
func (s *AdminService) GenerateAnalyticsReport(ctx context.Context) (*model.AnalyticsReport, error) {
	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.userRepo.CountActiveUsers()
	if err != nil {
		return nil, err
	}
	totalFavorites, err := s.favoriteRepo.CountFavorites()
	if err != nil {
		return nil, err
	}
	averageRating, err := s.favoriteRepo.GetAverageRating()
	if err != nil {
		return nil, err
	}
	topMovies, err := s.favoriteRepo.GetTopMovies(10)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.userRepo.GetTopUsers(10)
	if err != nil {
		return nil, err
	}

	report := &model.AnalyticsReport{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		TotalFavorites: totalFavorites,
		AverageRating:  averageRating,
		TopMovies:      topMovies,
		TopUsers:       topUsers,
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	err = s.cache.SetAnalyticsReportCache(ctx, jsonData)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// GetAnalyticsReport returns the cached report, or nil when no report
// has been generated yet.
func (s *AdminService) GetAnalyticsReport(ctx context.Context) (*model.AnalyticsReport, error) {
	cached, err := s.cache.GetAnalyticsReportCache(ctx)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, nil
	}

	var report model.AnalyticsReport
	err = json.Unmarshal(cached, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
