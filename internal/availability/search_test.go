package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workWindow = TimeOfDayRange{
	Start: TimeOfDay{Hour: 9, Minute: 0},
	End:   TimeOfDay{Hour: 18, Minute: 0},
}

func TestTimeOfDayRange_IsValid(t *testing.T) {
	assert.True(t, workWindow.IsValid())

	// Окно через полночь не поддерживается
	inverted := TimeOfDayRange{
		Start: TimeOfDay{Hour: 18, Minute: 0},
		End:   TimeOfDay{Hour: 9, Minute: 0},
	}
	assert.False(t, inverted.IsValid())

	degenerate := TimeOfDayRange{
		Start: TimeOfDay{Hour: 9, Minute: 30},
		End:   TimeOfDay{Hour: 9, Minute: 30},
	}
	assert.False(t, degenerate.IsValid())

	sameHour := TimeOfDayRange{
		Start: TimeOfDay{Hour: 9, Minute: 15},
		End:   TimeOfDay{Hour: 9, Minute: 45},
	}
	assert.True(t, sameHour.IsValid())
}

func TestFindFirstSlot_ExactFit(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	busy := []Interval{
		{Start: at(t, 10, 0), End: at(t, 11, 0)},
		{Start: at(t, 11, 30), End: at(t, 12, 30)},
	}

	// 09:00-10:00 даёт ровно 60 минут
	start, ok := FindFirstSlot([]time.Time{day}, workWindow, 60, busy)
	require.True(t, ok)
	assert.Equal(t, at(t, 9, 0), start)

	// Для 90 минут первый подходящий интервал — 12:30-18:00
	start, ok = FindFirstSlot([]time.Time{day}, workWindow, 90, busy)
	require.True(t, ok)
	assert.Equal(t, at(t, 12, 30), start)
}

func TestFindFirstSlot_SkipsFullyBusyDay(t *testing.T) {
	day1 := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	day2 := time.Date(2026, time.March, 3, 0, 0, 0, 0, testLoc)

	// Первый день занят целиком внутри окна
	busy := []Interval{
		{Start: workWindow.Start.On(day1), End: workWindow.End.On(day1)},
	}

	start, ok := FindFirstSlot([]time.Time{day1, day2}, workWindow, 60, busy)
	require.True(t, ok)
	assert.Equal(t, workWindow.Start.On(day2), start)
}

func TestFindFirstSlot_NoResult(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	busy := []Interval{
		{Start: workWindow.Start.On(day), End: workWindow.End.On(day)},
	}

	_, ok := FindFirstSlot([]time.Time{day}, workWindow, 30, busy)
	assert.False(t, ok)

	// Слишком длинная встреча не влезает даже в пустой день
	_, ok = FindFirstSlot([]time.Time{day}, workWindow, 10*60, nil)
	assert.False(t, ok)
}

func TestFindFirstSlot_DegenerateWindowSkipsDay(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	inverted := TimeOfDayRange{
		Start: TimeOfDay{Hour: 18, Minute: 0},
		End:   TimeOfDay{Hour: 9, Minute: 0},
	}

	_, ok := FindFirstSlot([]time.Time{day}, inverted, 30, nil)
	assert.False(t, ok)
}

func TestDayFree_BoundsBusyToWindow(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	busy := []Interval{
		{Start: at(t, 7, 0), End: at(t, 9, 30)},  // хвост попадает в окно
		{Start: at(t, 20, 0), End: at(t, 22, 0)}, // целиком вне окна
	}

	free := DayFree(day, workWindow, busy)
	require.Len(t, free, 1)
	assert.Equal(t, Interval{Start: at(t, 9, 30), End: at(t, 18, 0)}, free[0])
}

func TestTimeOfDay_On(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	moment := TimeOfDay{Hour: 14, Minute: 30}.On(day)
	assert.Equal(t, time.Date(2026, time.March, 2, 14, 30, 0, 0, testLoc), moment)
}
