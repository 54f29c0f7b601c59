package service

import (
	"movie_discovery/db/rabbitmq"
	"movie_discovery/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskRoutesAreValid(t *testing.T) {
	queues := rabbitmq.QueueNames()

	for name, route := range TaskRoutes() {
		assert.Contains(t, queues, route.Queue, "task %v routed to unknown queue", name)
		assert.LessOrEqual(t, route.Priority, uint8(10), "task %v priority above queue max", name)
		assert.Greater(t, route.MaxRetries, 0, "task %v has no retries", name)
		assert.Greater(t, route.Countdown.Seconds(), 0.0, "task %v has no retry countdown", name)
	}
}

func TestAllTasksAreRouted(t *testing.T) {
	taskNames := []string{
		model.TaskRefreshTrendingCache,
		model.TaskCleanupOldCache,
		model.TaskSendWeeklyRecommendations,
		model.TaskFetchMovieDetails,
		model.TaskSendFavoriteNotification,
		model.TaskGenerateAnalyticsReport,
		model.TaskBulkCachePopularMovies,
	}

	for _, name := range taskNames {
		_, ok := TaskRoutes()[name]
		assert.True(t, ok, "task %v has no route", name)
	}
}

func TestScheduledTasksAreRouted(t *testing.T) {
	for _, entry := range schedules {
		_, ok := TaskRoutes()[entry.taskName]
		assert.True(t, ok, "scheduled task %v has no route", entry.taskName)
		assert.Greater(t, entry.interval.Seconds(), 0.0)
	}
}

func TestTaskWireNames(t *testing.T) {
	// wire names match the names queued by the previous backend
	assert.Equal(t, "refreshTrendingCache", model.TaskRefreshTrendingCache)
	assert.Equal(t, "cleanupOldCache", model.TaskCleanupOldCache)
	assert.Equal(t, "sendWeeklyRecommendations", model.TaskSendWeeklyRecommendations)
	assert.Equal(t, "fetchMovieDetailsAsync", model.TaskFetchMovieDetails)
	assert.Equal(t, "sendFavoriteNotification", model.TaskSendFavoriteNotification)
	assert.Equal(t, "generateAnalyticsReport", model.TaskGenerateAnalyticsReport)
	assert.Equal(t, "bulkCachePopularMovies", model.TaskBulkCachePopularMovies)
}

func TestNotificationTasksHaveHighestPriority(t *testing.T) {
	favoriteRoute := TaskRoutes()[model.TaskSendFavoriteNotification]
	for name, route := range TaskRoutes() {
		if name == model.TaskSendFavoriteNotification {
			continue
		}
		assert.Greater(t, favoriteRoute.Priority, route.Priority, "favorite notification should outrank %v", name)
	}
}

func TestEnqueueUnknownTask(t *testing.T) {
	ts := &TaskService{}
	err := ts.EnqueueTask("someUnknownTask", nil)
	assert.ErrorIs(t, err, ErrUnknownTask)
}
