package handlers

// Ограничения диалогов
const (
	MaxRangeDays     = 31 // Максимальная длина диапазона дат в поиске
	MaxParticipants  = 10
	MaxTitleLength   = 120
	MaxListedEvents  = 20
	DefaultWindowStr = "9:00-18:00"
)

// Ключи временных данных диалогов
const (
	dataKeyDateStart    = "date_start"
	dataKeyDateEnd      = "date_end"
	dataKeyWindow       = "window"
	dataKeyDuration     = "duration"
	dataKeyParticipants = "participants"
	dataKeySlotStart    = "slot_start"
	dataKeyAllDay       = "all_day"
	dataKeyEventStart   = "event_start"
	dataKeyEventEnd     = "event_end"
)
