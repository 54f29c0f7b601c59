package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/db/rabbitmq"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type ITaskPublisher interface {
	EnqueueTask(name string, payload interface{}) error
}

type ITaskService interface {
	EnqueueTask(name string, payload interface{}) error
	StartWorkers() error
	Close()
}

// TaskRoute pins a task to its queue, amqp priority and retry policy.
type TaskRoute struct {
	Queue      string
	Priority   uint8
	MaxRetries int
	Countdown  time.Duration
}

var taskRoutes = map[string]TaskRoute{
	model.TaskRefreshTrendingCache:      {Queue: rabbitmq.CacheQueue, Priority: 7, MaxRetries: 3, Countdown: 300 * time.Second},
	model.TaskCleanupOldCache:           {Queue: rabbitmq.CacheQueue, Priority: 5, MaxRetries: 2, Countdown: 600 * time.Second},
	model.TaskSendWeeklyRecommendations: {Queue: rabbitmq.NotificationsQueue, Priority: 6, MaxRetries: 2, Countdown: 1800 * time.Second},
	model.TaskFetchMovieDetails:         {Queue: rabbitmq.ApiQueue, Priority: 6, MaxRetries: 3, Countdown: 120 * time.Second},
	model.TaskSendFavoriteNotification:  {Queue: rabbitmq.NotificationsQueue, Priority: 9, MaxRetries: 3, Countdown: 60 * time.Second},
	model.TaskGenerateAnalyticsReport:   {Queue: rabbitmq.ReportsQueue, Priority: 4, MaxRetries: 2, Countdown: 600 * time.Second},
	model.TaskBulkCachePopularMovies:    {Queue: rabbitmq.ApiQueue, Priority: 5, MaxRetries: 2, Countdown: 300 * time.Second},
}

func TaskRoutes() map[string]TaskRoute {
	return taskRoutes
}

var ErrUnknownTask = errors.New("unknown task")

//------------------------------------------
//------------------------------------------

type TaskService struct {
	movieService    IMovieService
	cache           ICacheService
	notifications   INotificationService
	adminService    IAdminService
	userRepo        repository.IUserRepository
	favoriteRepo    repository.IFavoriteRepository
	consumerChans   []*amqp.Channel
	workersPerQueue int
}

func NewTaskService(
	movieService IMovieService,
	cache ICacheService,
	notifications INotificationService,
	adminService IAdminService,
	userRepo repository.IUserRepository,
	favoriteRepo repository.IFavoriteRepository,
) *TaskService {
	return &TaskService{
		movieService:    movieService,
		cache:           cache,
		notifications:   notifications,
		adminService:    adminService,
		userRepo:        userRepo,
		favoriteRepo:    favoriteRepo,
		consumerChans:   make([]*amqp.Channel, 0),
		workersPerQueue: configs.GetConfigs().TaskWorkersPerQueue,
	}
}

//------------------------------------------
//------------------------------------------

func (ts *TaskService) EnqueueTask(name string, payload interface{}) error {
	route, ok := taskRoutes[name]
	if !ok {
		return ErrUnknownTask
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := model.Task{
		TaskId:    uuid.NewString(),
		Name:      name,
		Payload:   jsonPayload,
		Retry:     0,
		CreatedAt: time.Now().UTC(),
	}

	return ts.publishTask(&task, route)
}

func (ts *TaskService) publishTask(task *model.Task, route TaskRoute) error {
	body, err := json.Marshal(task)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return rabbitmq.Publish(ctx, route.Queue, route.Priority, body)
}

//------------------------------------------
//------------------------------------------

func (ts *TaskService) StartWorkers() error {
	for _, queue := range rabbitmq.QueueNames() {
		for i := 0; i < ts.workersPerQueue; i++ {
			deliveries, ch, err := rabbitmq.Consume(queue)
			if err != nil {
				return err
			}
			ts.consumerChans = append(ts.consumerChans, ch)
			go ts.worker(queue, deliveries)
		}
	}
	return nil
}

func (ts *TaskService) worker(queue string, deliveries <-chan amqp.Delivery) {
	for delivery := range deliveries {
		var task model.Task
		if err := json.Unmarshal(delivery.Body, &task); err != nil {
			errorMessage := fmt.Sprintf("Error unmarshaling task from queue %v: %v", queue, err)
			errorHandler.SaveError(errorMessage, err)
			_ = delivery.Ack(false)
			continue
		}

		err := ts.dispatch(&task)
		if err != nil {
			ts.retryTask(&task, err)
		}
		_ = delivery.Ack(false)
	}
}

// retryTask republishes a failed task with an incremented retry count
// after the task's countdown. Past max retries it is dropped.
func (ts *TaskService) retryTask(task *model.Task, taskErr error) {
	route, ok := taskRoutes[task.Name]
	if !ok {
		return
	}

	if task.Retry >= route.MaxRetries {
		errorMessage := fmt.Sprintf("Task %v[%v] failed after %v retries: %v", task.Name, task.TaskId, task.Retry, taskErr)
		errorHandler.SaveError(errorMessage, taskErr)
		return
	}

	retryTask := *task
	retryTask.Retry++
	time.AfterFunc(route.Countdown, func() {
		if err := ts.publishTask(&retryTask, route); err != nil {
			errorMessage := fmt.Sprintf("Error republishing task %v[%v]: %v", task.Name, task.TaskId, err)
			errorHandler.SaveError(errorMessage, err)
		}
	})
}

func (ts *TaskService) Close() {
	for _, ch := range ts.consumerChans {
		_ = ch.Close()
	}
}

//------------------------------------------
//------------------------------------------

func (ts *TaskService) dispatch(task *model.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch task.Name {
	case model.TaskRefreshTrendingCache:
		err := ts.movieService.RefreshTrendingMovies(ctx, configs.GetDbConfigs().TrendingRefreshPages)
		if err != nil {
			return err
		}
		ts.enqueueBulkCacheFromTrending(ctx)
		return nil
	case model.TaskCleanupOldCache:
		_, err := ts.cache.CleanupStrayKeys(ctx)
		return err
	case model.TaskSendWeeklyRecommendations:
		return ts.handleWeeklyRecommendations()
	case model.TaskFetchMovieDetails:
		var payload model.MovieIdPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return err
		}
		return ts.movieService.CacheMovieDetails(ctx, payload.MovieId)
	case model.TaskSendFavoriteNotification:
		var payload model.FavoriteNotificationPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return err
		}
		return ts.handleFavoriteNotification(&payload)
	case model.TaskGenerateAnalyticsReport:
		_, err := ts.adminService.GenerateAnalyticsReport(ctx)
		return err
	case model.TaskBulkCachePopularMovies:
		var payload model.MovieIdsPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return err
		}
		return ts.handleBulkCacheMovies(ctx, payload.MovieIds)
	default:
		return ErrUnknownTask
	}
}

//------------------------------------------
//------------------------------------------

func (ts *TaskService) handleWeeklyRecommendations() error {
	users, err := ts.userRepo.GetActiveNotifUsers()
	if err != nil {
		return err
	}

	for i := range users {
		favorites, err := ts.favoriteRepo.GetUserFavorites(users[i].UserId, 0, 5)
		if err != nil {
			errorMessage := fmt.Sprintf("Error loading favorites for user %v: %v", users[i].UserId, err)
			errorHandler.SaveError(errorMessage, err)
			continue
		}
		if len(favorites) == 0 {
			continue
		}

		body := "Based on your favorite movies, here are your top picks this week:\n"
		for j, favorite := range favorites {
			body += fmt.Sprintf("%v. %v (Rating: %v)\n", j+1, favorite.Title, favorite.VoteAverage)
		}

		title := "Your Weekly Movie Recommendations - " + time.Now().Format("January 02, 2006")
		ts.notifications.AddNotificationToQueue(users[i].NotifToken, title, body)
	}

	return nil
}

func (ts *TaskService) handleFavoriteNotification(payload *model.FavoriteNotificationPayload) error {
	user, err := ts.userRepo.GetUserById(payload.UserId)
	if err != nil {
		return err
	}
	if user.NotifToken == "" {
		// nothing to push to
		return nil
	}

	title := "Added to Favorites: " + payload.MovieTitle
	body := fmt.Sprintf("You've added \"%v\" to your favorites! We'll keep you updated with similar recommendations.", payload.MovieTitle)
	ts.notifications.AddNotificationToQueue(user.NotifToken, title, body)
	return nil
}

// enqueueBulkCacheFromTrending warms the details cache for the first
// trending page right after a refresh. Fire-and-forget.
func (ts *TaskService) enqueueBulkCacheFromTrending(ctx context.Context) {
	cached, err := ts.cache.GetMovieCache(ctx, TrendingMoviesCacheKey(1))
	if err != nil || cached == nil {
		return
	}

	var payload model.MovieListPayload
	if err = json.Unmarshal(cached, &payload); err != nil {
		return
	}

	movieIds := make([]int64, 0, 10)
	for i := range payload.Results {
		if i == 10 {
			break
		}
		movieIds = append(movieIds, payload.Results[i].MovieId)
	}
	if len(movieIds) == 0 {
		return
	}

	if err = ts.EnqueueTask(model.TaskBulkCachePopularMovies, model.MovieIdsPayload{MovieIds: movieIds}); err != nil {
		errorMessage := fmt.Sprintf("Error enqueueing bulk cache task: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (ts *TaskService) handleBulkCacheMovies(ctx context.Context, movieIds []int64) error {
	for _, movieId := range movieIds {
		if err := ts.movieService.CacheMovieDetails(ctx, movieId); err != nil {
			errorMessage := fmt.Sprintf("Error caching movie %v: %v", movieId, err)
			errorHandler.SaveError(errorMessage, err)
			continue
		}
	}
	return nil
}
