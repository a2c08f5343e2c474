package availability

import (
	"fmt"
	"strings"
)

// NoIntervals строка-заглушка для пустого списка интервалов
const NoIntervals = "none"

// FormatIntervals форматирует интервалы в строки вида "09:00 - 10:30",
// по одному на строку. Для пустого списка возвращает NoIntervals.
// Чистое форматирование, на алгебру не влияет.
func FormatIntervals(intervals []Interval) string {
	if len(intervals) == 0 {
		return NoIntervals
	}

	lines := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		lines = append(lines, fmt.Sprintf("%s - %s", iv.Start.Format("15:04"), iv.End.Format("15:04")))
	}
	return strings.Join(lines, "\n")
}
