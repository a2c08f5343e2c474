package model

import "time"

type EventSource string

const (
	EventSourceManual  EventSource = "manual"  // Добавлено пользователем через /busy
	EventSourceMeeting EventSource = "meeting" // Создано при бронировании встречи
)

// CalendarEvent занятый период в календаре пользователя.
// Время хранится полуинтервалом [StartTime, EndTime).
// Для AllDay событий значимы только даты: событие занимает все дни
// от даты начала до даты конца включительно.
type CalendarEvent struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Title     string      `json:"title"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	AllDay    bool        `json:"all_day"`
	Source    EventSource `json:"source"`
	MeetingID *string     `json:"meeting_id"` // указатель - есть только у событий встреч
	CreatedAt time.Time   `json:"created_at"`
}
