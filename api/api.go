package api

import (
	"context"
	"errors"
	"fmt"
	"movie_discovery/api/middleware"
	"movie_discovery/configs"
	_ "movie_discovery/docs"
	"movie_discovery/internal/handler"
	"movie_discovery/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(
	userHandler *handler.UserHandler,
	movieHandler *handler.MovieHandler,
	cacheHandler *handler.CacheHandler,
	adminHandler *handler.AdminHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		// Set Content-Type: text/plain; charset=utf-8
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	// router.Use(logger.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Static("/profile_images", configs.GetConfigs().ProfileImageDir, fiber.Static{
		Compress:  false,
		ByteRange: true,
		MaxAge:    3600,
	})

	userRoutes := router.Group("v1/user")
	{
		userRoutes.Post("/signup", userHandler.Signup)
		userRoutes.Post("/login", userHandler.Login)
		userRoutes.Put("/getToken", middleware.AuthRefreshMiddleware, userHandler.GetToken)
		userRoutes.Put("/logout", middleware.AuthMiddleware, userHandler.Logout)
		userRoutes.Get("/profile", middleware.AuthMiddleware, userHandler.GetProfile)
		userRoutes.Post("/notifToken", middleware.AuthMiddleware, userHandler.SetNotifToken)
		userRoutes.Post("/profileImage", middleware.AuthMiddleware, userHandler.UploadProfileImage)
	}

	movieRoutes := router.Group("v1/movie")
	{
		movieRoutes.Get("/trending", movieHandler.GetTrendingMovies)
		movieRoutes.Get("/search", movieHandler.SearchMovies)
		movieRoutes.Get("/details/:movieId", movieHandler.GetMovieDetails)
		movieRoutes.Get("/recommendations/:movieId", movieHandler.GetRecommendedMovies)
		movieRoutes.Get("/favorites", middleware.AuthMiddleware, movieHandler.GetFavorites)
		movieRoutes.Post("/favorites", middleware.AuthMiddleware, movieHandler.AddFavorite)
		movieRoutes.Delete("/favorites/:movieId", middleware.AuthMiddleware, movieHandler.RemoveFavorite)
	}

	cacheRoutes := router.Group("v1/cache")
	{
		cacheRoutes.Get("/stats", cacheHandler.GetCacheStats)
		cacheRoutes.Get("/stream", cacheHandler.StreamCacheStats)
	}

	adminRoutes := router.Group("v1/admin")
	{
		adminRoutes.Get("/analytics", middleware.AuthMiddleware, adminHandler.GetAnalyticsReport)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}

			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
