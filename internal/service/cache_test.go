package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyBuilders(t *testing.T) {
	assert.Equal(t, "trendingMovies:1", TrendingMoviesCacheKey(1))
	assert.Equal(t, "trendingMovies:12", TrendingMoviesCacheKey(12))
	assert.Equal(t, "recommendedMovies:550", RecommendedMoviesCacheKey(550))
	assert.Equal(t, "movieDetails:550", MovieDetailsCacheKey(550))
}

func TestCacheDurations(t *testing.T) {
	assert.Equal(t, 1*time.Hour, TrendingCacheDuration)
	assert.Equal(t, 2*time.Hour, RecommendationsCacheDuration)
	assert.Equal(t, 24*time.Hour, MovieDetailsCacheDuration)
	assert.Equal(t, 12*time.Hour, AnalyticsReportCacheDuration)
}

func TestParseInfoValue(t *testing.T) {
	info := "# Stats\r\ntotal_connections_received:17\r\nkeyspace_hits:1250\r\nkeyspace_misses:340\r\ntotal_commands_processed:99234\r\n"

	assert.Equal(t, int64(1250), parseInfoValue(info, "keyspace_hits"))
	assert.Equal(t, int64(340), parseInfoValue(info, "keyspace_misses"))
	assert.Equal(t, int64(99234), parseInfoValue(info, "total_commands_processed"))
	assert.Equal(t, int64(0), parseInfoValue(info, "missing_field"))
	assert.Equal(t, int64(0), parseInfoValue("keyspace_hits:oops\r\n", "keyspace_hits"))
}
