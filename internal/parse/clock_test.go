package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/meetbot/internal/availability"
)

func TestClock(t *testing.T) {
	tests := []struct {
		text  string
		want  availability.TimeOfDay
		valid bool
	}{
		{"09:05", availability.TimeOfDay{Hour: 9, Minute: 5}, true},
		{"9:05", availability.TimeOfDay{Hour: 9, Minute: 5}, true},
		{"0:00", availability.TimeOfDay{Hour: 0, Minute: 0}, true},
		{"23:59", availability.TimeOfDay{Hour: 23, Minute: 59}, true},
		{"9:5", availability.TimeOfDay{}, false}, // минуты всегда из двух цифр
		{"24:00", availability.TimeOfDay{}, false},
		{"12:60", availability.TimeOfDay{}, false},
		{"12", availability.TimeOfDay{}, false},
		{"12:00:00", availability.TimeOfDay{}, false},
		{"полдень", availability.TimeOfDay{}, false},
	}

	for _, tt := range tests {
		got, ok := Clock(tt.text)
		assert.Equal(t, tt.valid, ok, "Clock(%q)", tt.text)
		if tt.valid {
			assert.Equal(t, tt.want, got, "Clock(%q)", tt.text)
		}
	}
}

func TestClockRange(t *testing.T) {
	got, ok := ClockRange("9:00-18:00")
	require.True(t, ok)
	assert.Equal(t, availability.TimeOfDay{Hour: 9, Minute: 0}, got.Start)
	assert.Equal(t, availability.TimeOfDay{Hour: 18, Minute: 0}, got.End)
}

func TestClockRange_InvertedParsesButIsInvalid(t *testing.T) {
	// Перевёрнутое окно — не ошибка парсинга, а семантическая невалидность
	got, ok := ClockRange("18:00-9:00")
	require.True(t, ok)
	assert.False(t, got.IsValid())
}

func TestClockRange_Invalid(t *testing.T) {
	for _, text := range []string{"9:00", "9:00-", "-18:00", "9:00~18:00", "9:00-18:0", "abc"} {
		_, ok := ClockRange(text)
		assert.False(t, ok, "ClockRange(%q)", text)
	}
}
