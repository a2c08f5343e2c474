package availability

import "time"

// DayFree возвращает свободные интервалы одного дня внутри дневного окна.
// Если окно вырожденное (конец не позже начала), свободного времени нет.
func DayFree(day time.Time, window TimeOfDayRange, busy []Interval) []Interval {
	windowStart := window.Start.On(day)
	windowEnd := window.End.On(day)
	if !windowEnd.After(windowStart) {
		return nil
	}
	merged := MergeBusy(busy, windowStart, windowEnd)
	return FreeIntervals(windowStart, windowEnd, merged)
}

// FindFirstSlot ищет самое раннее начало свободного интервала длиной не
// меньше durationMinutes. Дни обходятся в заданном порядке, внутри дня
// интервалы — по возрастанию начала; первый подходящий выигрывает,
// перебор сразу останавливается. Если ни один день не подошёл,
// возвращается (zero, false).
func FindFirstSlot(days []time.Time, window TimeOfDayRange, durationMinutes int, busy []Interval) (time.Time, bool) {
	for _, day := range days {
		for _, free := range DayFree(day, window, busy) {
			if free.Minutes() >= durationMinutes {
				return free.Start, true
			}
		}
	}
	return time.Time{}, false
}
