package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/meetbot/internal/repository"
	"go.uber.org/zap"
)

// Сколько хранить закончившиеся события календаря
const eventRetention = 30 * 24 * time.Hour

// Janitor управляет фоновой чисткой устаревших данных
type Janitor struct {
	eventRepo *repository.EventRepository
	logger    *zap.Logger
	stopChan  chan struct{}
}

// NewJanitor создаёт новый janitor
func NewJanitor(eventRepo *repository.EventRepository, logger *zap.Logger) *Janitor {
	return &Janitor{
		eventRepo: eventRepo,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start запускает фоновую чистку
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("Starting event janitor")
	go j.runPurgeTask(ctx)
}

// Stop останавливает фоновую чистку
func (j *Janitor) Stop() {
	j.logger.Info("Stopping event janitor")
	close(j.stopChan)
}

// runPurgeTask периодически удаляет давно закончившиеся события
func (j *Janitor) runPurgeTask(ctx context.Context) {
	// Первый запуск сразу при старте
	j.purge(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.purge(ctx)
		case <-j.stopChan:
			j.logger.Info("Purge task stopped")
			return
		case <-ctx.Done():
			j.logger.Info("Purge task cancelled")
			return
		}
	}
}

func (j *Janitor) purge(ctx context.Context) {
	before := time.Now().Add(-eventRetention)

	deleted, err := j.eventRepo.DeleteOlderThan(ctx, before)
	if err != nil {
		j.logger.Error("Failed to purge old events", zap.Error(err))
		return
	}

	if deleted > 0 {
		j.logger.Info("Old events purged",
			zap.Int64("deleted", deleted),
			zap.Time("before", before))
	}
}
