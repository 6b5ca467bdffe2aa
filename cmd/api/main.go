package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cinefeel/cinefeel-backend/docs"
	"github.com/cinefeel/cinefeel-backend/internal/config"
	"github.com/cinefeel/cinefeel-backend/internal/database"
	"github.com/cinefeel/cinefeel-backend/internal/handler"
	"github.com/cinefeel/cinefeel-backend/internal/middleware"
	"github.com/cinefeel/cinefeel-backend/internal/migration"
	"github.com/cinefeel/cinefeel-backend/internal/repository"
	"github.com/cinefeel/cinefeel-backend/internal/routes"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	pkgcache "github.com/cinefeel/cinefeel-backend/pkg/cache"
	"github.com/cinefeel/cinefeel-backend/pkg/i18n"
	"github.com/cinefeel/cinefeel-backend/pkg/jwt"
	pkglogger "github.com/cinefeel/cinefeel-backend/pkg/logger"
	pkgredis "github.com/cinefeel/cinefeel-backend/pkg/redis"
	"github.com/cinefeel/cinefeel-backend/pkg/tmdb"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// @title           CineFeel API
// @version         1.0
// @description     영화 북마크, 태그, 공개 피드, 좋아요 API
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	dotenvFiles := config.LoadDotEnv()

	// 로거 초기화
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	configPath := config.ConfigPath(env)
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB 연결
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()
	pkglogger.Info("Connected to %s", cfg.Database.Driver)

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis 연결 (선택)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(context.Background(), pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without cache)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
			defer func() { _ = redisClient.Close() }()
		}
	}
	cacheService := pkgcache.NewService(redisClient)

	// JWT Manager
	jwtManager, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresInDuration())
	if err != nil {
		log.Fatalf("Failed to init session tokens: %v", err)
	}

	// TMDB
	tmdbClient := tmdb.NewClient(tmdb.Config{
		APIKey:   cfg.TMDB.APIKey,
		BaseURL:  cfg.TMDB.BaseURL,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.TimeoutDuration(),
	})
	if !tmdbClient.Enabled() {
		pkglogger.Warn("TMDB api key not configured, /api/movies will return 503")
	}

	// i18n Bundle
	i18nBundle := i18n.NewBundle(i18n.LocaleKo)
	for locale, msgs := range i18n.DefaultMessages() {
		i18nBundle.LoadMessages(locale, msgs)
	}
	if _, err := os.Stat("i18n"); err == nil {
		if err := i18nBundle.LoadDir("i18n"); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, bookmarkRepo)
	movieService := service.NewMovieService(tmdbClient, cacheService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, jwtManager.TTL(), cfg.IsProduction())
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	likeHandler := handler.NewLikeHandler(likeService)
	movieHandler := handler.NewMovieHandler(movieService)

	// Router
	router := routes.NewEngine(cfg, i18nBundle)
	routes.SetupOps(router, db, cacheService)
	routes.Setup(router, authHandler, bookmarkHandler, likeHandler, movieHandler, jwtManager)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go collectDBStats(ctx, db)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 서버 시작
	go func() {
		pkglogger.Info("Server listening on %s (%s)", cfg.Addr(), cfg.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	pkglogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		pkglogger.Error("Server shutdown failed: %v", err)
	}
}

// collectDBStats exports connection pool stats to prometheus every 15s
func collectDBStats(ctx context.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			middleware.RecordDBStats(sqlDB.Stats())
		}
	}
}
