package model

import (
	"encoding/json"
	"time"
)

// Task is the wire envelope published to the tasks exchange.
type Task struct {
	TaskId    string          `json:"taskId"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	Retry     int             `json:"retry"`
	CreatedAt time.Time       `json:"createdAt"`
}

const (
	TaskRefreshTrendingCache      = "refreshTrendingCache"
	TaskCleanupOldCache           = "cleanupOldCache"
	TaskSendWeeklyRecommendations = "sendWeeklyRecommendations"
	TaskFetchMovieDetails         = "fetchMovieDetailsAsync"
	TaskSendFavoriteNotification  = "sendFavoriteNotification"
	TaskGenerateAnalyticsReport   = "generateAnalyticsReport"
	TaskBulkCachePopularMovies    = "bulkCachePopularMovies"
)

//------------------------------------
//------------------------------------

type MovieIdPayload struct {
	MovieId int64 `json:"movieId"`
}

type MovieIdsPayload struct {
	MovieIds []int64 `json:"movieIds"`
}

type FavoriteNotificationPayload struct {
	UserId     int64  `json:"userId"`
	MovieTitle string `json:"movieTitle"`
}
