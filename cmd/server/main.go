package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betx.backend/internal/config"
	"betx.backend/internal/infrastructure/datasources/postgres"
	"betx.backend/internal/infrastructure/repositories"
	"betx.backend/internal/interfaces/http/handlers"
	"betx.backend/internal/interfaces/http/middleware"
	"betx.backend/internal/usecases"
	"betx.backend/pkg/jwt"
	"betx.backend/pkg/logger"
	"betx.backend/pkg/metrics"
	"betx.backend/pkg/redis"
)

var (
	loadDotenv    = godotenv.Load
	loadCfg       = config.Load
	initLog       = logger.Init
	initRedis     = redis.NewClient
	openDB        = postgres.NewConnection
	migrateDB     = postgres.Migrate
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	runServer     = serveHTTP
	signalContext = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	redisClient, err := initRedis(cfg.Redis.URL, cfg.Redis.Password)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := migrateDB(db); err != nil {
		return err
	}
	logger.Info(ctx, "Connected to PostgreSQL")

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(cfg, db, redisClient, metrics.New()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signalContext()
	defer stop()

	logger.Info(ctx, "BetX backend starting", zap.String("addr", srv.Addr))
	if err := runServer(sigCtx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(ctx, "Server stopped")
	return nil
}

// newRouter wires repositories, usecases and handlers onto a gin engine
func newRouter(cfg *config.Config, db *gorm.DB, redisClient *goredis.Client, m *metrics.Metrics) *gin.Engine {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	blacklist := redis.NewTokenBlacklist(redisClient)
	idempotencyStore := redis.NewIdempotencyStore(redisClient)

	userRepo := repositories.NewUserRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, statsRepo, activityRepo, uow, jwtService, blacklist)
	userUsecase := usecases.NewUserUsecase(userRepo, txRepo)
	activityUsecase := usecases.NewActivityUsecase(activityRepo, statsRepo)
	ledgerUsecase := usecases.NewLedgerUsecase(userRepo, txRepo, activityRepo, uow, m)
	gameUsecase := usecases.NewGameUsecase(userRepo, activityRepo, activityUsecase, uow, m, nil)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigin)
	registerHealthRoute(r, m)
	registerAPIRoutes(r, routeDeps{
		authHandler:    handlers.NewAuthHandler(authUsecase),
		userHandler:    handlers.NewUserHandler(userUsecase, activityUsecase),
		gameHandler:    handlers.NewGameHandler(gameUsecase),
		adminHandler:   handlers.NewAdminHandler(userUsecase, ledgerUsecase),
		authMiddleware: middleware.AuthMiddleware(jwtService, authUsecase, blacklist),
		idempotency:    middleware.IdempotencyMiddleware(idempotencyStore),
	})
	return r
}

// serveHTTP runs srv until ctx is cancelled, then drains in-flight requests for up to shutdownTimeout
func serveHTTP(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
