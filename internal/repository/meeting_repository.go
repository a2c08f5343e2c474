package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MeetingRepository struct {
	pool *pgxpool.Pool
}

func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{pool: pool}
}

// CreateTx создаёт встречу внутри транзакции
func (r *MeetingRepository) CreateTx(ctx context.Context, tx pgx.Tx, meeting *model.Meeting) error {
	query := `
		INSERT INTO meetings (id, organizer_id, title, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := tx.QueryRow(
		ctx, query,
		meeting.ID,
		meeting.OrganizerID,
		meeting.Title,
		meeting.StartTime,
		meeting.EndTime,
		meeting.Status,
	).Scan(&meeting.CreatedAt)

	if err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}

	return nil
}

// AddParticipantTx добавляет участника встречи внутри транзакции
func (r *MeetingRepository) AddParticipantTx(ctx context.Context, tx pgx.Tx, meetingID string, userID int64) error {
	query := `INSERT INTO meeting_participants (meeting_id, user_id) VALUES ($1, $2)`

	_, err := tx.Exec(ctx, query, meetingID, userID)
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}

	return nil
}

// GetByID получает встречу по ID вместе с участниками
func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*model.Meeting, error) {
	query := `
		SELECT id, organizer_id, title, start_time, end_time, status, created_at
		FROM meetings
		WHERE id = $1
	`

	var meeting model.Meeting
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&meeting.ID,
		&meeting.OrganizerID,
		&meeting.Title,
		&meeting.StartTime,
		&meeting.EndTime,
		&meeting.Status,
		&meeting.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Встреча не найдена
		}
		return nil, fmt.Errorf("get meeting by id: %w", err)
	}

	participants, err := r.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	meeting.Participants = participants

	return &meeting, nil
}

// ListByUser получает запланированные встречи, где пользователь участвует
func (r *MeetingRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Meeting, error) {
	query := `
		SELECT m.id, m.organizer_id, m.title, m.start_time, m.end_time, m.status, m.created_at
		FROM meetings m
		JOIN meeting_participants mp ON mp.meeting_id = m.id
		WHERE mp.user_id = $1
		  AND m.status = $2
		ORDER BY m.start_time
	`

	rows, err := r.pool.Query(ctx, query, userID, model.MeetingStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("list meetings by user: %w", err)
	}
	defer rows.Close()

	var meetings []*model.Meeting
	for rows.Next() {
		var meeting model.Meeting
		err := rows.Scan(
			&meeting.ID,
			&meeting.OrganizerID,
			&meeting.Title,
			&meeting.StartTime,
			&meeting.EndTime,
			&meeting.Status,
			&meeting.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, &meeting)
	}

	return meetings, rows.Err()
}

// UpdateStatusTx меняет статус встречи внутри транзакции
func (r *MeetingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status model.MeetingStatus) error {
	tag, err := tx.Exec(ctx, `UPDATE meetings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update meeting status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meeting not found")
	}
	return nil
}

func (r *MeetingRepository) listParticipants(ctx context.Context, meetingID string) ([]*model.User, error) {
	query := `
		SELECT u.id, u.telegram_id, u.username, u.first_name, u.last_name, u.language_code, u.created_at
		FROM users u
		JOIN meeting_participants mp ON mp.user_id = u.id
		WHERE mp.meeting_id = $1
		ORDER BY u.id
	`

	rows, err := r.pool.Query(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.TelegramID,
			&user.Username,
			&user.FirstName,
			&user.LastName,
			&user.LanguageCode,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}
