// Package parse разбирает введённый пользователем текст в даты, время и
// длительности. Все функции чистые: непригодный текст даёт (zero, false),
// паник и обращений к системным часам нет. Опорный момент времени
// (reference) всегда передаётся вызывающим кодом.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
)

// DateParts составные части даты до привязки к году
type DateParts struct {
	Year    int
	Month   int
	Day     int
	HasYear bool
}

var (
	fullDateRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	monthDayRe     = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)
	compactRangeRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2})-(\d{1,2}/\d{1,2})$`)
)

// SplitDate распознаёт "YYYY-M-D" (год указан) либо "M/D" / "M-D" (год опущен).
// Любая другая форма не распознаётся.
func SplitDate(text string) (DateParts, bool) {
	text = strings.TrimSpace(text)

	if m := fullDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return DateParts{Year: year, Month: month, Day: day, HasYear: true}, true
	}

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return DateParts{Month: month, Day: day}, true
	}

	return DateParts{}, false
}

// Date разбирает дату относительно опорного момента ref.
// Если год опущен, берётся год ref; дата, оказавшаяся строго раньше начала
// дня ref, переносится на следующий год — "1/5" в декабре означает
// ближайший январь. Явно указанный год используется как есть.
func Date(text string, ref time.Time) (time.Time, bool) {
	parts, ok := SplitDate(text)
	if !ok {
		return time.Time{}, false
	}
	return resolveDate(parts, ref)
}

// DateRange разбирает диапазон дат. Разделители: "~", ".." либо компактная
// форма "M/D-M/D" (одиночный "-" делит только два токена месяц/день, чтобы
// не конфликтовать с формой одиночной даты "M-D"). Текст без разделителя
// трактуется как диапазон из одного дня.
func DateRange(text string, ref time.Time) (time.Time, time.Time, bool) {
	text = strings.TrimSpace(text)

	left, right, found := splitRange(text)
	if !found {
		day, ok := Date(text, ref)
		if !ok {
			return time.Time{}, time.Time{}, false
		}
		return day, day, true
	}

	start, ok := Date(left, ref)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	endParts, ok := SplitDate(right)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end, ok := resolveEndDate(endParts, start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func splitRange(text string) (left, right string, found bool) {
	for _, sep := range []string{"~", ".."} {
		if i := strings.Index(text, sep); i >= 0 {
			return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+len(sep):]), true
		}
	}
	if m := compactRangeRe.FindStringSubmatch(text); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// resolveDate политика подстановки опущенного года: год опорного момента с
// переносом на следующий год, если дата уже прошла относительно начала дня ref
func resolveDate(parts DateParts, ref time.Time) (time.Time, bool) {
	loc := ref.Location()

	if parts.HasYear {
		return makeDate(parts.Year, parts.Month, parts.Day, loc)
	}

	day, ok := makeDate(ref.Year(), parts.Month, parts.Day, loc)
	if !ok {
		return time.Time{}, false
	}
	if day.Before(availability.StartOfDay(ref)) {
		return makeDate(ref.Year()+1, parts.Month, parts.Day, loc)
	}
	return day, true
}

// resolveEndDate конец диапазона: опущенный год наследуется от уже
// разрешённого начала; если конец всё равно раньше начала, год сдвигается
// ещё на один — так "12/30~1/3" перешагивает границу года
func resolveEndDate(parts DateParts, start time.Time) (time.Time, bool) {
	loc := start.Location()

	if parts.HasYear {
		return makeDate(parts.Year, parts.Month, parts.Day, loc)
	}

	end, ok := makeDate(start.Year(), parts.Month, parts.Day, loc)
	if !ok {
		return time.Time{}, false
	}
	if end.Before(start) {
		return makeDate(start.Year()+1, parts.Month, parts.Day, loc)
	}
	return end, true
}

// makeDate строит полночь указанной даты и проверяет, что дата реальная:
// time.Date нормализует 2/30 в начало марта, такие даты считаем невалидными
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
