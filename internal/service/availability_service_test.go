package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/model"
)

var testLoc = time.FixedZone("MSK", 3*60*60)

func TestBusyIntervals_TimedEvent(t *testing.T) {
	event := &model.CalendarEvent{
		StartTime: time.Date(2026, time.March, 2, 10, 0, 0, 0, testLoc),
		EndTime:   time.Date(2026, time.March, 2, 11, 30, 0, 0, testLoc),
	}

	intervals := busyIntervals([]*model.CalendarEvent{event})
	require.Len(t, intervals, 1)
	assert.Equal(t, event.StartTime, intervals[0].Start)
	assert.Equal(t, event.EndTime, intervals[0].End)
}

func TestBusyIntervals_AllDayEventCoversEndDateInclusive(t *testing.T) {
	// Событие "весь день" с 2 по 3 марта занимает оба дня целиком:
	// правая граница — полночь 4 марта
	event := &model.CalendarEvent{
		StartTime: time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc),
		EndTime:   time.Date(2026, time.March, 3, 0, 0, 0, 0, testLoc),
		AllDay:    true,
	}

	intervals := busyIntervals([]*model.CalendarEvent{event})
	require.Len(t, intervals, 1)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc), intervals[0].Start)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, testLoc), intervals[0].End)
}

func TestBusyIntervals_AllDayBlocksWholeWindow(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, testLoc)
	event := &model.CalendarEvent{
		StartTime: day,
		EndTime:   day,
		AllDay:    true,
	}

	window := availability.TimeOfDayRange{
		Start: availability.TimeOfDay{Hour: 9, Minute: 0},
		End:   availability.TimeOfDay{Hour: 18, Minute: 0},
	}

	free := availability.DayFree(day, window, busyIntervals([]*model.CalendarEvent{event}))
	assert.Empty(t, free)
}

func TestNextDayStart(t *testing.T) {
	moment := time.Date(2026, time.March, 2, 15, 45, 0, 0, testLoc)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, testLoc), nextDayStart(moment))
}
