package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDays_Inclusive(t *testing.T) {
	start := time.Date(2025, time.December, 30, 0, 0, 0, 0, testLoc)
	end := time.Date(2026, time.January, 3, 0, 0, 0, 0, testLoc)

	days := ListDays(start, end)
	require.Len(t, days, 5)
	assert.Equal(t, start, days[0])
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, testLoc), days[2])
	assert.Equal(t, end, days[4])
}

func TestListDays_SingleDay(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)

	days := ListDays(day, day)
	require.Len(t, days, 1)
	assert.Equal(t, day, days[0])
}

func TestListDays_DSTTransition(t *testing.T) {
	// Весенний переход в Нью-Йорке: 8 марта 2026 длится 23 часа.
	// Шаг календарным днём должен дать полночь каждого дня, а не сдвиг на час.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2026, time.March, 7, 0, 0, 0, 0, loc)
	end := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)

	days := ListDays(start, end)
	require.Len(t, days, 3)
	for i, day := range days {
		assert.Equal(t, 0, day.Hour(), "день %d должен начинаться в полночь", i)
		assert.Equal(t, 7+i, day.Day())
	}
}

func TestStartOfDay(t *testing.T) {
	moment := time.Date(2026, time.March, 2, 17, 45, 12, 0, testLoc)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc), StartOfDay(moment))
}
