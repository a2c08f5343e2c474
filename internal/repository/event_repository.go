package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, user_id, title, start_time, end_time, all_day, source, meeting_id, created_at`

// Create создаёт событие календаря
func (r *EventRepository) Create(ctx context.Context, event *model.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (user_id, title, start_time, end_time, all_day, source, meeting_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		event.UserID,
		event.Title,
		event.StartTime,
		event.EndTime,
		event.AllDay,
		event.Source,
		event.MeetingID,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

// CreateTx создаёт событие календаря внутри транзакции
func (r *EventRepository) CreateTx(ctx context.Context, tx pgx.Tx, event *model.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (user_id, title, start_time, end_time, all_day, source, meeting_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := tx.QueryRow(
		ctx, query,
		event.UserID,
		event.Title,
		event.StartTime,
		event.EndTime,
		event.AllDay,
		event.Source,
		event.MeetingID,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("create event in tx: %w", err)
	}

	return nil
}

// ListByUserBetween получает события пользователя, пересекающие [from, to)
func (r *EventRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*model.CalendarEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM calendar_events
		WHERE user_id = $1
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListUpcomingByUser получает будущие события пользователя
func (r *EventRepository) ListUpcomingByUser(ctx context.Context, userID int64, now time.Time, limit int) ([]*model.CalendarEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM calendar_events
		WHERE user_id = $1
		  AND end_time > $2
		ORDER BY start_time
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// DeleteByMeetingIDTx удаляет события, созданные для встречи, внутри транзакции
func (r *EventRepository) DeleteByMeetingIDTx(ctx context.Context, tx pgx.Tx, meetingID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM calendar_events WHERE meeting_id = $1`, meetingID)
	if err != nil {
		return fmt.Errorf("delete events by meeting: %w", err)
	}
	return nil
}

// DeleteOlderThan удаляет события, закончившиеся раньше указанного момента.
// Возвращает количество удалённых строк.
func (r *EventRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE end_time < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]*model.CalendarEvent, error) {
	var events []*model.CalendarEvent
	for rows.Next() {
		var event model.CalendarEvent
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Title,
			&event.StartTime,
			&event.EndTime,
			&event.AllDay,
			&event.Source,
			&event.MeetingID,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}
