package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/bankapp/bankcore/internal/adapter/http"
	"github.com/bankapp/bankcore/internal/adapter/http/handler"
	postgresRepo "github.com/bankapp/bankcore/internal/adapter/repository/postgres"
	redisRepo "github.com/bankapp/bankcore/internal/adapter/repository/redis"
	"github.com/bankapp/bankcore/internal/infrastructure/config"
	"github.com/bankapp/bankcore/internal/infrastructure/logger"
	"github.com/bankapp/bankcore/internal/infrastructure/postgres"
	"github.com/bankapp/bankcore/internal/infrastructure/redis"
	"github.com/bankapp/bankcore/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger
	zerolog.SetGlobalLevel(appLogger.GetLevel())

	ctx := context.Background()

	// Connect to PostgreSQL
	dialCtx, dialCancel := context.WithTimeout(ctx, cfg.DatabaseDialTimeout)
	pool, err := postgres.NewPool(dialCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	dialCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	uowManager := postgresRepo.NewUnitOfWorkManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	transferUC := usecase.NewTransferUseCase(uowManager, accountRepo, txnRepo, idGen, appLogger)
	depositUC := usecase.NewDepositUseCase(uowManager, accountRepo, txnRepo, idGen, appLogger)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	txnUC := usecase.NewTransactionUseCase(txnRepo)

	// Initialize handlers
	transferHandler := handler.NewTransferHandler(transferUC)
	depositHandler := handler.NewDepositHandler(depositUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	txnHandler := handler.NewTransactionHandler(txnUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransferHandler:    transferHandler,
		DepositHandler:     depositHandler,
		TransactionHandler: txnHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
