package main

import (
	"log"
	"movie_discovery/api"
	"movie_discovery/configs"
	"movie_discovery/db"
	"movie_discovery/db/mongodb"
	"movie_discovery/db/rabbitmq"
	"movie_discovery/db/redis"
	"movie_discovery/internal/client"
	"movie_discovery/internal/handler"
	"movie_discovery/internal/repository"
	"movie_discovery/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Discovery
// @version					1.0
// @description				Movie discovery service backed by tmdb, with favorites, caching and background tasks.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1,
		EnableTracing:    true,
		Debug:            true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	postgresDB, err := db.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	if err = postgresDB.AutoMigrate(); err != nil {
		if db.IsConnectionNotAcceptingError(err) {
			log.Fatalf("postgres is not accepting connections: %s", err)
		}
		log.Fatalf("could not migrate postgres database: %s", err)
	}

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	go configs.LoadDbConfigs(mongoDB.GetDB())

	if err = rabbitmq.ConnectRabbitmq(); err != nil {
		log.Fatalf("could not initialize rabbitmq connection: %s", err)
	}
	defer rabbitmq.Close()

	userRep := repository.NewUserRepository(postgresDB.GetDB())
	favoriteRep := repository.NewFavoriteRepository(postgresDB.GetDB())
	movieRep := repository.NewMovieRepository(mongoDB.GetDB())

	cacheSvc := service.NewCacheService()
	tmdbClient := client.NewTmdbClient()
	movieSvc := service.NewMovieService(tmdbClient, cacheSvc, movieRep)
	notificationSvc := service.NewNotificationService()
	adminSvc := service.NewAdminService(userRep, favoriteRep, cacheSvc)

	taskSvc := service.NewTaskService(movieSvc, cacheSvc, notificationSvc, adminSvc, userRep, favoriteRep)
	if err = taskSvc.StartWorkers(); err != nil {
		log.Fatalf("could not start task workers: %s", err)
	}
	defer taskSvc.Close()

	favoriteSvc := service.NewFavoriteService(favoriteRep, taskSvc)
	imageSvc := service.NewImageService()
	userSvc := service.NewUserService(userRep, imageSvc)

	schedulerSvc := service.NewSchedulerService(taskSvc)
	schedulerSvc.Start()
	defer schedulerSvc.Stop()

	userHandler := handler.NewUserHandler(userSvc)
	movieHandler := handler.NewMovieHandler(movieSvc, favoriteSvc)
	cacheHandler := handler.NewCacheHandler(cacheSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, taskSvc)

	api.InitRouter(userHandler, movieHandler, cacheHandler, adminHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
