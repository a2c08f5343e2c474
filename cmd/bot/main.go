package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/meetbot/internal/app"
	"github.com/Freeeeeet/meetbot/internal/config"
	"github.com/Freeeeeet/meetbot/internal/controller"
	"github.com/Freeeeeet/meetbot/internal/repository"
	"github.com/Freeeeeet/meetbot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting meetbot",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Failed to load timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	// Подключаемся к базе
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// База может подниматься дольше бота, поэтому пингуем с ретраями
	backoff := retry.WithMaxDuration(30*time.Second, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			logger.Warn("Database not ready yet", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("✅ Connected to database")

	// Применяем миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	version, err := migrator.Version(ctx)
	if err != nil {
		logger.Fatal("Failed to get migrations version", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}
	logger.Info("✅ Migrations applied", zap.Int64("version", version))

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	meetingRepo := repository.NewMeetingRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	availabilityService := service.NewAvailabilityService(eventRepo, logger)
	meetingService := service.NewMeetingService(pool, meetingRepo, eventRepo, logger)

	// Телеграм бот
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		userService,
		availabilityService,
		meetingService,
		location,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	// Фоновая чистка старых событий
	janitor := app.NewJanitor(eventRepo, logger)
	janitor.Start(ctx)
	defer janitor.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Meetbot stopped")
}
