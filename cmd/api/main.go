// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"careers-backend/internal/common/aws"
	"careers-backend/internal/common/config"
	"careers-backend/internal/common/database"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/handlers"
	"careers-backend/internal/repository/postgres"
	"careers-backend/internal/security"
	"careers-backend/internal/server"
	"careers-backend/internal/services"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting careers backend...")

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init AWS clients (optional, notification delivery only) ---
	var emailSender services.EmailSender
	var smsSender services.SMSSender
	if cfg.Notifications.AWS.SES.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SES client unavailable, HR emails disabled", zap.Error(err))
		} else {
			emailSender = sesClient
		}
	}
	if cfg.Notifications.AWS.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SNS client unavailable, candidate SMS disabled", zap.Error(err))
		} else {
			smsSender = snsClient
		}
	}

	// --- Wire repositories, services and handlers ---
	db := pg.GetDB()
	jobRepo := postgres.NewJobPostRepository(db)
	appRepo := postgres.NewApplicationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.Auth.JWTSecret)
	notifier := services.NewNotifier(cfg.Notifications, emailSender, smsSender, log)

	jobService := services.NewJobPostService(jobRepo, log)
	appService := services.NewApplicationService(appRepo, rdb.GetClient(), notifier, log)
	storageService := services.NewStorageService(fileRepo, cfg.Storage, log)
	authService := services.NewAuthService(
		userRepo,
		jwtProvider,
		time.Duration(cfg.Auth.TokenTTL)*time.Minute,
		cfg.Auth.BcryptCost,
		log,
	)

	router := server.NewRouter(cfg, server.Handlers{
		Jobs:         handlers.NewJobPostHandler(jobService, log),
		Applications: handlers.NewApplicationHandler(appService, log),
		Storage:      handlers.NewStorageHandler(storageService, log),
		Auth:         handlers.NewAuthHandler(authService, log),
	}, jwtProvider, rdb.GetClient(), log)

	srv := server.New(cfg, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Wait for shutdown signal ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		zapLog.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("HTTP server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
