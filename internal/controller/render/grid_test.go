package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/service"
)

func testWindow() availability.TimeOfDayRange {
	return availability.TimeOfDayRange{
		Start: availability.TimeOfDay{Hour: 9},
		End:   availability.TimeOfDay{Hour: 18},
	}
}

func testDays(t *testing.T) []service.DayAvailability {
	t.Helper()

	loc := time.FixedZone("MSK", 3*60*60)
	window := testWindow()

	days := availability.ListDays(
		time.Date(2026, time.March, 2, 0, 0, 0, 0, loc),
		time.Date(2026, time.March, 4, 0, 0, 0, 0, loc),
	)

	busy := []availability.Interval{
		{
			Start: time.Date(2026, time.March, 2, 10, 0, 0, 0, loc),
			End:   time.Date(2026, time.March, 2, 11, 0, 0, 0, loc),
		},
		{
			Start: time.Date(2026, time.March, 3, 9, 0, 0, 0, loc),
			End:   time.Date(2026, time.March, 3, 18, 0, 0, 0, loc),
		},
	}

	result := make([]service.DayAvailability, 0, len(days))
	for _, day := range days {
		windowStart := window.Start.On(day)
		windowEnd := window.End.On(day)
		merged := availability.MergeBusy(busy, windowStart, windowEnd)
		result = append(result, service.DayAvailability{
			Day:  day,
			Busy: merged,
			Free: availability.FreeIntervals(windowStart, windowEnd, merged),
		})
	}
	return result
}

func TestAvailabilityGridProducesPNG(t *testing.T) {
	data, err := AvailabilityGrid(testDays(t), testWindow())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestAvailabilityGridRejectsEmptyInput(t *testing.T) {
	_, err := AvailabilityGrid(nil, testWindow())
	assert.Error(t, err)
}

func TestAvailabilityGridRejectsInvalidWindow(t *testing.T) {
	window := availability.TimeOfDayRange{
		Start: availability.TimeOfDay{Hour: 18},
		End:   availability.TimeOfDay{Hour: 9},
	}
	_, err := AvailabilityGrid(testDays(t), window)
	assert.Error(t, err)
}
