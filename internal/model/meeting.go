package model

import "time"

type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled" // Забронирована
	MeetingStatusCanceled  MeetingStatus = "canceled"  // Отменена организатором
)

type Meeting struct {
	ID          string        `json:"id"` // UUID
	OrganizerID int64         `json:"organizer_id"`
	Title       string        `json:"title"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      MeetingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Participants []*User `json:"participants,omitempty"`
}
