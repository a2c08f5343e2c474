package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDateWithWeekday форматирует дату с днём недели
func FormatDateWithWeekday(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format("02.01.2006"), GetWeekdayShort(int(t.Weekday())))
}

// FormatTime форматирует только время
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04"))
}

// FormatDateRange форматирует диапазон дат; одиночный день — без тильды
func FormatDateRange(start, end time.Time) string {
	if start.Equal(end) {
		return FormatDate(start)
	}
	return fmt.Sprintf("%s ~ %s", FormatDate(start), FormatDate(end))
}

// FormatTimeOfDayRange форматирует дневное окно
func FormatTimeOfDayRange(window availability.TimeOfDayRange) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		window.Start.Hour, window.Start.Minute,
		window.End.Hour, window.End.Minute,
	)
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(weekday int) string {
	names := []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}
