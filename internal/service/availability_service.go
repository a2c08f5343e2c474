package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/Freeeeeet/meetbot/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DayAvailability занятость и свободное время одного дня внутри дневного окна
type DayAvailability struct {
	Day  time.Time
	Busy []availability.Interval
	Free []availability.Interval
}

type AvailabilityService struct {
	eventRepo *repository.EventRepository
	logger    *zap.Logger
}

func NewAvailabilityService(eventRepo *repository.EventRepository, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CollectBusy собирает занятые интервалы всех участников за период [from, to).
// Календари участников запрашиваются параллельно; движок доступности
// вызывается только после того, как ответили все источники.
func (s *AvailabilityService) CollectBusy(ctx context.Context, userIDs []int64, from, to time.Time) ([]availability.Interval, error) {
	var (
		mu   sync.Mutex
		busy []availability.Interval
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			events, err := s.eventRepo.ListByUserBetween(gctx, userID, from, to)
			if err != nil {
				return fmt.Errorf("events of user %d: %w", userID, err)
			}

			intervals := busyIntervals(events)
			mu.Lock()
			busy = append(busy, intervals...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return busy, nil
}

// FindFirstSlot ищет самое раннее свободное начало встречи для всех
// участников сразу. Возвращает (zero, false, nil) если подходящего
// интервала нет — это не ошибка, а пустой результат.
func (s *AvailabilityService) FindFirstSlot(
	ctx context.Context,
	userIDs []int64,
	dateStart, dateEnd time.Time,
	window availability.TimeOfDayRange,
	durationMinutes int,
) (time.Time, bool, error) {
	days := availability.ListDays(dateStart, dateEnd)

	// Занятость берём сразу на весь период: дневное окно обрежет лишнее при слиянии
	from := availability.StartOfDay(dateStart)
	to := nextDayStart(dateEnd)

	busy, err := s.CollectBusy(ctx, userIDs, from, to)
	if err != nil {
		return time.Time{}, false, err
	}

	start, found := availability.FindFirstSlot(days, window, durationMinutes, busy)
	if found {
		s.logger.Info("Slot found",
			zap.Time("start", start),
			zap.Int("duration_minutes", durationMinutes),
			zap.Int("participants", len(userIDs)),
		)
	}

	return start, found, nil
}

// DayByDay строит расклад занятости и свободного времени по дням
func (s *AvailabilityService) DayByDay(
	ctx context.Context,
	userIDs []int64,
	dateStart, dateEnd time.Time,
	window availability.TimeOfDayRange,
) ([]DayAvailability, error) {
	from := availability.StartOfDay(dateStart)
	to := nextDayStart(dateEnd)

	busy, err := s.CollectBusy(ctx, userIDs, from, to)
	if err != nil {
		return nil, err
	}

	days := availability.ListDays(dateStart, dateEnd)
	result := make([]DayAvailability, 0, len(days))
	for _, day := range days {
		windowStart := window.Start.On(day)
		windowEnd := window.End.On(day)
		merged := availability.MergeBusy(busy, windowStart, windowEnd)
		result = append(result, DayAvailability{
			Day:  day,
			Busy: merged,
			Free: availability.FreeIntervals(windowStart, windowEnd, merged),
		})
	}

	return result, nil
}

// AddBusyEvent добавляет занятость в календарь пользователя.
// Для AllDay событий значимы только даты start и end (конец включительно).
func (s *AvailabilityService) AddBusyEvent(ctx context.Context, userID int64, title string, start, end time.Time, allDay bool) (*model.CalendarEvent, error) {
	if !allDay && !end.After(start) {
		return nil, fmt.Errorf("event end must be after start")
	}

	event := &model.CalendarEvent{
		UserID:    userID,
		Title:     title,
		StartTime: start,
		EndTime:   end,
		AllDay:    allDay,
		Source:    model.EventSourceManual,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("add busy event: %w", err)
	}

	s.logger.Info("Busy event added",
		zap.Int64("user_id", userID),
		zap.Time("start", start),
		zap.Bool("all_day", allDay),
	)

	return event, nil
}

// ListUpcomingEvents получает будущие события пользователя
func (s *AvailabilityService) ListUpcomingEvents(ctx context.Context, userID int64, now time.Time, limit int) ([]*model.CalendarEvent, error) {
	return s.eventRepo.ListUpcomingByUser(ctx, userID, now, limit)
}

// busyIntervals нормализует события календаря в занятые интервалы.
// Событие "весь день" занимает все дни от даты начала до даты конца
// включительно, поэтому правая граница — полночь следующего за концом дня.
func busyIntervals(events []*model.CalendarEvent) []availability.Interval {
	intervals := make([]availability.Interval, 0, len(events))
	for _, event := range events {
		if event.AllDay {
			intervals = append(intervals, availability.Interval{
				Start: availability.StartOfDay(event.StartTime),
				End:   nextDayStart(event.EndTime),
			})
			continue
		}
		intervals = append(intervals, availability.Interval{
			Start: event.StartTime,
			End:   event.EndTime,
		})
	}
	return intervals
}

func nextDayStart(t time.Time) time.Time {
	day := availability.StartOfDay(t)
	return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
}
