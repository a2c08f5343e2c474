package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStateLifecycle(t *testing.T) {
	m := NewManager()
	const telegramID = int64(42)

	assert.Equal(t, StateNone, m.GetState(telegramID))

	m.SetState(telegramID, StateBusyDate)
	assert.Equal(t, StateBusyDate, m.GetState(telegramID))

	m.SetState(telegramID, StateBusyTime)
	assert.Equal(t, StateBusyTime, m.GetState(telegramID))

	m.ClearState(telegramID)
	assert.Equal(t, StateNone, m.GetState(telegramID))
}

func TestManagerData(t *testing.T) {
	m := NewManager()
	const telegramID = int64(42)

	_, ok := m.GetData(telegramID, "duration")
	assert.False(t, ok)

	m.SetState(telegramID, StateFindDuration)
	m.SetData(telegramID, "duration", 45)

	value, ok := m.GetData(telegramID, "duration")
	require.True(t, ok)
	assert.Equal(t, 45, value)

	// Данные живут, пока жив диалог
	m.SetState(telegramID, StateFindConfirm)
	value, ok = m.GetData(telegramID, "duration")
	require.True(t, ok)
	assert.Equal(t, 45, value)

	m.ClearState(telegramID)
	_, ok = m.GetData(telegramID, "duration")
	assert.False(t, ok)
}

func TestManagerSetStateNoneClears(t *testing.T) {
	m := NewManager()
	const telegramID = int64(7)

	m.SetState(telegramID, StateFreeDates)
	m.SetData(telegramID, "date_start", "x")

	m.SetState(telegramID, StateNone)
	assert.Equal(t, StateNone, m.GetState(telegramID))
	_, ok := m.GetData(telegramID, "date_start")
	assert.False(t, ok)
}

func TestManagerIsolatesUsers(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateBusyDate)
	m.SetState(2, StateFindDates)

	assert.Equal(t, StateBusyDate, m.GetState(1))
	assert.Equal(t, StateFindDates, m.GetState(2))

	m.ClearState(1)
	assert.Equal(t, StateNone, m.GetState(1))
	assert.Equal(t, StateFindDates, m.GetState(2))
}
