package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("MSK", 3*60*60)

// Опорный момент: 1 декабря 2025, середина дня
var ref = time.Date(2025, time.December, 1, 14, 30, 0, 0, testLoc)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, testLoc)
}

func TestSplitDate(t *testing.T) {
	tests := []struct {
		text  string
		want  DateParts
		valid bool
	}{
		{"2026-1-15", DateParts{Year: 2026, Month: 1, Day: 15, HasYear: true}, true},
		{"2026-01-05", DateParts{Year: 2026, Month: 1, Day: 5, HasYear: true}, true},
		{"1/15", DateParts{Month: 1, Day: 15}, true},
		{"1-15", DateParts{Month: 1, Day: 15}, true},
		{"12/31", DateParts{Month: 12, Day: 31}, true},
		{"15", DateParts{}, false},
		{"1/15/2026", DateParts{}, false},
		{"завтра", DateParts{}, false},
		{"", DateParts{}, false},
	}

	for _, tt := range tests {
		got, ok := SplitDate(tt.text)
		assert.Equal(t, tt.valid, ok, "SplitDate(%q)", tt.text)
		if tt.valid {
			assert.Equal(t, tt.want, got, "SplitDate(%q)", tt.text)
		}
	}
}

func TestDate_ExplicitYearUsedAsIs(t *testing.T) {
	// Явный год не корректируется, даже если дата в прошлом
	got, ok := Date("2024-5-20", ref)
	require.True(t, ok)
	assert.Equal(t, date(2024, time.May, 20), got)
}

func TestDate_ImplicitYearRollsForward(t *testing.T) {
	// "1/5" в декабре означает январь следующего года
	got, ok := Date("1/5", ref)
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 5), got)

	// Дата после опорной остаётся в текущем году
	got, ok = Date("12/15", ref)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.December, 15), got)
}

func TestDate_SameDayAsReferenceKeepsYear(t *testing.T) {
	// День опорного момента не считается прошедшим: сравнение идёт
	// с началом дня, а не с самим моментом
	got, ok := Date("12/1", ref)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.December, 1), got)
}

func TestDate_InvalidCalendarDates(t *testing.T) {
	for _, text := range []string{"2026-2-30", "13/1", "0/5", "1/0", "1/32", "2025-2-29"} {
		_, ok := Date(text, ref)
		assert.False(t, ok, "Date(%q) должна быть невалидной", text)
	}

	// 29 февраля существует только в високосном году
	_, ok := Date("2028-2-29", ref)
	assert.True(t, ok)
}

func TestDateRange_Separators(t *testing.T) {
	for _, text := range []string{"12/10~12/20", "12/10..12/20", "12/10-12/20"} {
		start, end, ok := DateRange(text, ref)
		require.True(t, ok, "DateRange(%q)", text)
		assert.Equal(t, date(2025, time.December, 10), start)
		assert.Equal(t, date(2025, time.December, 20), end)
	}
}

func TestDateRange_AcrossYearBoundary(t *testing.T) {
	// Конец унаследовал год начала, оказался раньше — сдвигается на год вперёд
	start, end, ok := DateRange("12/30~1/3", ref)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.December, 30), start)
	assert.Equal(t, date(2026, time.January, 3), end)
}

func TestDateRange_SingleDateFallback(t *testing.T) {
	// Текст без разделителя — диапазон из одного дня.
	// Одиночный "-" в "M-D" не делит текст на две даты.
	start, end, ok := DateRange("12-15", ref)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.December, 15), start)
	assert.Equal(t, end, start)

	start, end, ok = DateRange("2026-1-15", ref)
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 15), start)
	assert.Equal(t, end, start)
}

func TestDateRange_EndInheritsResolvedStartYear(t *testing.T) {
	// Начало уже перенесено в 2026 год, конец наследует именно его
	start, end, ok := DateRange("1/5~1/10", ref)
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 5), start)
	assert.Equal(t, date(2026, time.January, 10), end)
}

func TestDateRange_Invalid(t *testing.T) {
	for _, text := range []string{"12/10~", "~12/10", "12/10~abc", "abc~12/10", "12/10~2/30", "hello"} {
		_, _, ok := DateRange(text, ref)
		assert.False(t, ok, "DateRange(%q)", text)
	}
}
