package availability

import "time"

// TimeOfDay время суток без привязки к дате
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Before возвращает true если t строго раньше other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// On привязывает время суток к календарному дню в зоне этого дня
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// TimeOfDayRange дневное окно поиска, например 09:00-18:00
type TimeOfDayRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// IsValid проверяет что конец окна строго позже начала.
// Окно через полночь не поддерживается. Проверка намеренно отделена от
// парсинга: синтаксически корректное, но перевёрнутое окно парсится успешно.
func (r TimeOfDayRange) IsValid() bool {
	return r.Start.Before(r.End)
}
