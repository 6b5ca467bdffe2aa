package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/config"
	"github.com/cinefeel/cinefeel-backend/internal/handler"
	"github.com/cinefeel/cinefeel-backend/internal/middleware"
	"github.com/cinefeel/cinefeel-backend/pkg/cache"
	"github.com/cinefeel/cinefeel-backend/pkg/i18n"
	"github.com/cinefeel/cinefeel-backend/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewEngine creates the gin engine with the global middleware chain
func NewEngine(cfg *config.Config, bundle *i18n.Bundle) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.I18n(bundle))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found", "code": "NOT_FOUND"})
	})

	return router
}

// SetupOps registers /health, /metrics and /swagger. The cache is optional
// and never fails the health check.
func SetupOps(router *gin.Engine, db *gorm.DB, cacheService cache.Service) {
	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := pingDB(c.Request.Context(), db); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unavailable"
		}
		c.JSON(status, gin.H{
			"status":   http.StatusText(status),
			"service":  "cinefeel-backend",
			"database": dbStatus,
			"cache":    cacheStatus(c.Request.Context(), cacheService),
			"time":     time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Setup configures all API routes under /api
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	bookmarkHandler *handler.BookmarkHandler,
	likeHandler *handler.LikeHandler,
	movieHandler *handler.MovieHandler,
	jwtManager *jwt.Manager,
) {
	// 세션 쿠키가 있으면 userID를 채움 (없어도 통과)
	api := router.Group("/api", middleware.SessionAuth(jwtManager))
	requireAuth := middleware.RequireAuth()

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	// Bookmarks (owner only)
	bookmarks := api.Group("/bookmarks", requireAuth)
	{
		bookmarks.GET("", bookmarkHandler.List)
		bookmarks.POST("", bookmarkHandler.Create)
		bookmarks.GET("/:tmdbId", bookmarkHandler.Get)
		bookmarks.PATCH("/:tmdbId", bookmarkHandler.Update)
		bookmarks.DELETE("/:tmdbId", bookmarkHandler.Delete)
	}

	// Public feed
	api.GET("/public-bookmarks", bookmarkHandler.ListPublic)

	// Likes
	likes := api.Group("/likes")
	{
		likes.GET("/:bookmarkId", likeHandler.Count)
		likes.POST("/:bookmarkId", requireAuth, likeHandler.Like)
		likes.DELETE("/:bookmarkId", requireAuth, likeHandler.Unlike)
	}

	// Movie catalog proxy
	movies := api.Group("/movies")
	{
		movies.GET("/popular", movieHandler.Popular)
		movies.GET("/search", movieHandler.Search)
		movies.GET("/:id", movieHandler.Detail)
	}
}

func cacheStatus(ctx context.Context, cacheService cache.Service) string {
	if cacheService == nil || !cacheService.IsAvailable() {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := cacheService.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
