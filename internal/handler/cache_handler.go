package handler

import (
	"context"
	"fmt"
	"movie_discovery/internal/service"
	errorHandler "movie_discovery/pkg/error"
	"movie_discovery/pkg/response"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type ICacheHandler interface {
	GetCacheStats(c *fiber.Ctx) error
	StreamCacheStats(c *fiber.Ctx) error
}

type CacheHandler struct {
	cacheService service.ICacheService
	upgrader     websocket.FastHTTPUpgrader
}

func NewCacheHandler(cacheService service.ICacheService) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		upgrader: websocket.FastHTTPUpgrader{
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      func(ctx *fasthttp.RequestCtx) bool { return true },
		},
	}
}

//------------------------------------------
//------------------------------------------

// GetCacheStats godoc
//
//	@Summary		Cache Stats
//	@Description	get redis keyspace stats and app-level hit rates.
//	@Tags			Cache
//	@Success		200	{object}	model.CacheStats
//	@Failure		500	{object}	response.ResponseErrorModel
//	@Router			/v1/cache/stats [get]
func (h *CacheHandler) GetCacheStats(c *fiber.Ctx) error {
	stats, err := h.cacheService.GetCacheStats(c.Context())
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, stats)
}

// StreamCacheStats godoc
//
//	@Summary		Cache Stats Stream
//	@Description	websocket stream pushing cache stats every 5 seconds.
//	@Tags			Cache
//	@Success		101
//	@Router			/v1/cache/stream [get]
func (h *CacheHandler) StreamCacheStats(c *fiber.Ctx) error {
	err := h.upgrader.Upgrade(c.Context(), func(conn *websocket.Conn) {
		defer conn.Close()

		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			stats, err := h.cacheService.GetCacheStats(ctx)
			cancel()
			if err != nil {
				errorMessage := fmt.Sprintf("Error reading cache stats for stream: %v", err)
				errorHandler.SaveError(errorMessage, err)
				continue
			}

			if err = conn.WriteJSON(stats); err != nil {
				return
			}
		}
	})
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return nil
}
