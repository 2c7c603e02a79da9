package http

import (
	"pairplay/internal/config"
	"pairplay/internal/http/handlers"
	"pairplay/internal/http/middleware"
	"pairplay/internal/session"
	"pairplay/internal/store"
	"pairplay/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	redis "github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, rdb *redis.Client, st store.SessionStore, coord *session.Coordinator, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, coord, cfg.BotToken)
	healthHandler := handlers.NewHealthHandler(db, rdb, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h, cfg)

	// Legacy /api routes (kept for older webapp builds)
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(api, h, cfg)

	// WebSocket live feed of one session
	hub := ws.NewHub(st)
	r.GET("/ws", h.WS(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	// Auth
	api.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Auth)

	// Shared game sessions
	sessions := api.Group("/sessions")
	sessions.Use(middleware.JWT())
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.GET("/:id", h.GetSession)
		sessions.GET("/:id/reveal", h.RevealSession)
		sessions.POST("/:id/answers", h.SubmitAnswer)
		sessions.POST("/:id/complete", h.CompleteSession)
		sessions.POST("/:id/rating", h.SubmitRating)
	}
}
