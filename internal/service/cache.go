package service

import (
	"context"
	"fmt"
	"movie_discovery/db/redis"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"strconv"
	"strings"
	"time"
)

type ICacheService interface {
	GetMovieCache(ctx context.Context, key string) ([]byte, error)
	SetMovieCache(ctx context.Context, key string, value []byte, duration time.Duration) error
	CountCacheHit(ctx context.Context)
	CountCacheMiss(ctx context.Context)
	GetCacheStats(ctx context.Context) (*model.CacheStats, error)
	CleanupStrayKeys(ctx context.Context) (int, error)
	GetAnalyticsReportCache(ctx context.Context) ([]byte, error)
	SetAnalyticsReportCache(ctx context.Context, value []byte) error
}

const (
	jwtDataCachePrefix           = "jwtKey:"
	trendingMoviesCachePrefix    = "trendingMovies:"
	recommendedMoviesCachePrefix = "recommendedMovies:"
	movieDetailsCachePrefix      = "movieDetails:"
	analyticsReportCacheKey      = "analyticsReport"
	cacheHitsCounterKey          = "cacheStats:hits"
	cacheMissesCounterKey        = "cacheStats:misses"
)

const (
	TrendingCacheDuration        = 1 * time.Hour
	RecommendationsCacheDuration = 2 * time.Hour
	MovieDetailsCacheDuration    = 24 * time.Hour
	AnalyticsReportCacheDuration = 12 * time.Hour
)

func TrendingMoviesCacheKey(page int) string {
	return trendingMoviesCachePrefix + strconv.Itoa(page)
}

func RecommendedMoviesCacheKey(movieId int64) string {
	return recommendedMoviesCachePrefix + strconv.FormatInt(movieId, 10)
}

func MovieDetailsCacheKey(movieId int64) string {
	return movieDetailsCachePrefix + strconv.FormatInt(movieId, 10)
}

//------------------------------------------
//------------------------------------------

type CacheService struct {
}

func NewCacheService() *CacheService {
	return &CacheService{}
}

// GetMovieCache returns the cached payload for key, or nil on miss.
func (c *CacheService) GetMovieCache(ctx context.Context, key string) ([]byte, error) {
	result, err := redis.GetRedis(ctx, key)
	if err != nil {
		if err.Error() == "redis: nil" {
			return nil, nil
		}
		return nil, err
	}
	if result == "" {
		return nil, nil
	}
	return []byte(result), nil
}

func (c *CacheService) SetMovieCache(ctx context.Context, key string, value []byte, duration time.Duration) error {
	err := redis.SetRedis(ctx, key, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie cache [%v]: %v", key, err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func (c *CacheService) CountCacheHit(ctx context.Context) {
	_, err := redis.IncrRedis(ctx, cacheHitsCounterKey)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on incrementing hit counter: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (c *CacheService) CountCacheMiss(ctx context.Context) {
	_, err := redis.IncrRedis(ctx, cacheMissesCounterKey)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on incrementing miss counter: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (c *CacheService) GetCacheStats(ctx context.Context) (*model.CacheStats, error) {
	info, err := redis.InfoRedis(ctx, "stats")
	if err != nil {
		return nil, err
	}

	stats := &model.CacheStats{
		KeyspaceHits:   parseInfoValue(info, "keyspace_hits"),
		KeyspaceMisses: parseInfoValue(info, "keyspace_misses"),
		TotalCommands:  parseInfoValue(info, "total_commands_processed"),
	}
	totalRequests := stats.KeyspaceHits + stats.KeyspaceMisses
	if totalRequests > 0 {
		stats.HitRate = float64(stats.KeyspaceHits) / float64(totalRequests) * 100
	}

	stats.AppCacheHits = c.getCounter(ctx, cacheHitsCounterKey)
	stats.AppCacheMisses = c.getCounter(ctx, cacheMissesCounterKey)
	appTotal := stats.AppCacheHits + stats.AppCacheMisses
	if appTotal > 0 {
		stats.AppCacheHitRate = float64(stats.AppCacheHits) / float64(appTotal) * 100
	}

	return stats, nil
}

func (c *CacheService) getCounter(ctx context.Context, key string) int64 {
	result, err := redis.GetRedis(ctx, key)
	if err != nil || result == "" {
		return 0
	}
	value, _ := strconv.ParseInt(result, 10, 64)
	return value
}

// parseInfoValue extracts a numeric field from a redis INFO section.
func parseInfoValue(info string, field string) int64 {
	for _, line := range strings.Split(info, "\r\n") {
		if strings.HasPrefix(line, field+":") {
			value, err := strconv.ParseInt(strings.TrimPrefix(line, field+":"), 10, 64)
			if err != nil {
				return 0
			}
			return value
		}
	}
	return 0
}

//------------------------------------------
//------------------------------------------

// CleanupStrayKeys removes movie cache keys that lost their expiry,
// keeping redis memory bounded.
func (c *CacheService) CleanupStrayKeys(ctx context.Context) (int, error) {
	prefixes := []string{
		trendingMoviesCachePrefix,
		recommendedMoviesCachePrefix,
		movieDetailsCachePrefix,
	}

	cleanupCount := 0
	for _, prefix := range prefixes {
		keys, err := redis.ScanKeysRedis(ctx, prefix+"*", 100)
		if err != nil {
			return cleanupCount, err
		}
		for _, key := range keys {
			ttl, err := redis.TTLRedis(ctx, key)
			if err != nil {
				continue
			}
			if ttl == time.Duration(-1) {
				if _, err = redis.DelRedis(ctx, key); err == nil {
					cleanupCount++
				}
			}
		}
	}

	return cleanupCount, nil
}

//------------------------------------------
//------------------------------------------

func (c *CacheService) GetAnalyticsReportCache(ctx context.Context) ([]byte, error) {
	return c.GetMovieCache(ctx, analyticsReportCacheKey)
}

func (c *CacheService) SetAnalyticsReportCache(ctx context.Context, value []byte) error {
	return c.SetMovieCache(ctx, analyticsReportCacheKey, value, AnalyticsReportCacheDuration)
}

//------------------------------------------
//------------------------------------------

func SetJwtDataCache(key string, value string, duration time.Duration) error {
	err := redis.SetRedis(context.Background(), jwtDataCachePrefix+key, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
