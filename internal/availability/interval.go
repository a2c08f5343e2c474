package availability

import (
	"sort"
	"time"
)

// Interval полуоткрытый интервал времени [Start, End).
// Интервалы с End <= Start считаются вырожденными: алгебра их отбрасывает.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Minutes возвращает длину интервала в целых минутах
func (iv Interval) Minutes() int {
	return int(iv.End.Sub(iv.Start) / time.Minute)
}

// MergeBusy обрезает занятые интервалы по границам [rangeStart, rangeEnd),
// отбрасывает вырожденные и склеивает пересекающиеся и соприкасающиеся.
// Результат — новая отсортированная последовательность без пересечений.
// Повторный вызов на собственном результате ничего не меняет.
func MergeBusy(busy []Interval, rangeStart, rangeEnd time.Time) []Interval {
	clamped := make([]Interval, 0, len(busy))
	for _, iv := range busy {
		start := iv.Start
		if start.Before(rangeStart) {
			start = rangeStart
		}
		end := iv.End
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		// Вырожденные и целиком вне диапазона — отбрасываем
		if !end.After(start) {
			continue
		}
		clamped = append(clamped, Interval{Start: start, End: end})
	}

	if len(clamped) == 0 {
		return nil
	}

	sort.Slice(clamped, func(i, j int) bool {
		return clamped[i].Start.Before(clamped[j].Start)
	})

	merged := make([]Interval, 0, len(clamped))
	current := clamped[0]
	for _, next := range clamped[1:] {
		if next.Start.After(current.End) {
			merged = append(merged, current)
			current = next
			continue
		}
		// Соприкасающиеся (next.Start == current.End) тоже склеиваем:
		// нулевой зазор не является свободным временем
		if next.End.After(current.End) {
			current.End = next.End
		}
	}
	merged = append(merged, current)

	return merged
}

// FreeIntervals строит дополнение к занятым интервалам внутри [rangeStart, rangeEnd).
// mergedBusy должен быть результатом MergeBusy по тому же диапазону.
// Вместе с mergedBusy результат разбивает диапазон без пересечений и дыр.
func FreeIntervals(rangeStart, rangeEnd time.Time, mergedBusy []Interval) []Interval {
	if len(mergedBusy) == 0 {
		if rangeEnd.After(rangeStart) {
			return []Interval{{Start: rangeStart, End: rangeEnd}}
		}
		return nil
	}

	var free []Interval
	cursor := rangeStart
	for _, busy := range mergedBusy {
		if busy.Start.After(cursor) {
			free = append(free, Interval{Start: cursor, End: busy.Start})
		}
		if busy.End.After(cursor) {
			cursor = busy.End
		}
	}
	if cursor.Before(rangeEnd) {
		free = append(free, Interval{Start: cursor, End: rangeEnd})
	}

	return free
}
