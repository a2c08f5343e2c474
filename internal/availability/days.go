package availability

import "time"

// StartOfDay возвращает полночь того же календарного дня в той же зоне
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ListDays возвращает последовательность полуночей от startDate до endDate
// включительно. Шаг — календарный день, а не 24 часа, чтобы переход на
// летнее время не сдвигал границы дней.
func ListDays(startDate, endDate time.Time) []time.Time {
	start := StartOfDay(startDate)
	end := StartOfDay(endDate)

	var days []time.Time
	for day := start; !day.After(end); day = nextDay(day) {
		days = append(days, day)
	}
	return days
}

func nextDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
}
