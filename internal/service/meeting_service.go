package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/Freeeeeet/meetbot/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type MeetingService struct {
	pool        *pgxpool.Pool
	meetingRepo *repository.MeetingRepository
	eventRepo   *repository.EventRepository
	logger      *zap.Logger
}

func NewMeetingService(
	pool *pgxpool.Pool,
	meetingRepo *repository.MeetingRepository,
	eventRepo *repository.EventRepository,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		pool:        pool,
		meetingRepo: meetingRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

// Schedule бронирует встречу: создаёт запись встречи, участников и по
// одному занятому событию в календаре каждого участника, чтобы следующие
// поиски видели это время занятым. Всё в одной транзакции.
func (s *MeetingService) Schedule(
	ctx context.Context,
	organizer *model.User,
	participants []*model.User,
	title string,
	start time.Time,
	durationMinutes int,
) (*model.Meeting, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	meeting := &model.Meeting{
		ID:          uuid.NewString(),
		OrganizerID: organizer.ID,
		Title:       title,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:      model.MeetingStatusScheduled,
	}

	// Начинаем транзакцию
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = s.meetingRepo.CreateTx(ctx, tx, meeting)
	if err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	for _, participant := range participants {
		err = s.meetingRepo.AddParticipantTx(ctx, tx, meeting.ID, participant.ID)
		if err != nil {
			return nil, fmt.Errorf("add participant: %w", err)
		}

		event := &model.CalendarEvent{
			UserID:    participant.ID,
			Title:     title,
			StartTime: meeting.StartTime,
			EndTime:   meeting.EndTime,
			Source:    model.EventSourceMeeting,
			MeetingID: &meeting.ID,
		}
		err = s.eventRepo.CreateTx(ctx, tx, event)
		if err != nil {
			return nil, fmt.Errorf("create meeting event: %w", err)
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Meeting scheduled",
		zap.String("meeting_id", meeting.ID),
		zap.Int64("organizer_id", organizer.ID),
		zap.Time("start", meeting.StartTime),
		zap.Int("participants", len(participants)),
	)

	meeting.Participants = participants
	return meeting, nil
}

// Cancel отменяет встречу организатора и убирает её события из календарей
func (s *MeetingService) Cancel(ctx context.Context, meetingID string, organizerID int64) (*model.Meeting, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	if meeting == nil {
		return nil, fmt.Errorf("meeting not found")
	}

	if meeting.OrganizerID != organizerID {
		return nil, fmt.Errorf("only the organizer can cancel the meeting")
	}

	if meeting.Status != model.MeetingStatusScheduled {
		return nil, fmt.Errorf("meeting is not scheduled")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = s.meetingRepo.UpdateStatusTx(ctx, tx, meetingID, model.MeetingStatusCanceled)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	err = s.eventRepo.DeleteByMeetingIDTx(ctx, tx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("delete meeting events: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Info("Meeting canceled",
		zap.String("meeting_id", meetingID),
		zap.Int64("organizer_id", organizerID),
	)

	meeting.Status = model.MeetingStatusCanceled
	return meeting, nil
}

// ListByUser получает запланированные встречи пользователя
func (s *MeetingService) ListByUser(ctx context.Context, userID int64) ([]*model.Meeting, error) {
	return s.meetingRepo.ListByUser(ctx, userID)
}
