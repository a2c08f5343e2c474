package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("MSK", 3*60*60)

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2026, time.March, 2, hour, minute, 0, 0, testLoc)
}

func TestMergeBusy_Overlapping(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 11, 0), End: at(t, 12, 30)},
		{Start: at(t, 10, 0), End: at(t, 11, 30)},
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	require.Len(t, merged, 1)
	assert.Equal(t, at(t, 10, 0), merged[0].Start)
	assert.Equal(t, at(t, 12, 30), merged[0].End)
}

func TestMergeBusy_TouchingIntervalsMergeIntoOne(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 10, 0), End: at(t, 11, 0)},
		{Start: at(t, 11, 0), End: at(t, 12, 0)},
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	require.Len(t, merged, 1)
	assert.Equal(t, at(t, 10, 0), merged[0].Start)
	assert.Equal(t, at(t, 12, 0), merged[0].End)
}

func TestMergeBusy_ClampsToRangeAndDropsDegenerate(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 8, 0), End: at(t, 9, 30)},   // обрезается слева
		{Start: at(t, 17, 30), End: at(t, 20, 0)}, // обрезается справа
		{Start: at(t, 7, 0), End: at(t, 8, 0)},    // целиком вне диапазона
		{Start: at(t, 12, 0), End: at(t, 12, 0)},  // нулевая длина
		{Start: at(t, 14, 0), End: at(t, 13, 0)},  // перевёрнутый
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	require.Len(t, merged, 2)
	assert.Equal(t, Interval{Start: at(t, 9, 0), End: at(t, 9, 30)}, merged[0])
	assert.Equal(t, Interval{Start: at(t, 17, 30), End: at(t, 18, 0)}, merged[1])
}

func TestMergeBusy_Idempotent(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 10, 0), End: at(t, 11, 0)},
		{Start: at(t, 10, 30), End: at(t, 12, 0)},
		{Start: at(t, 15, 0), End: at(t, 16, 0)},
	}

	once := MergeBusy(busy, rangeStart, rangeEnd)
	twice := MergeBusy(once, rangeStart, rangeEnd)
	assert.Equal(t, once, twice)
}

func TestFreeIntervals_EmptyBusyIsWholeRange(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	free := FreeIntervals(rangeStart, rangeEnd, nil)
	require.Len(t, free, 1)
	assert.Equal(t, Interval{Start: rangeStart, End: rangeEnd}, free[0])
}

func TestFreeIntervals_Scenario(t *testing.T) {
	// Окно 09:00-18:00, занято 10:00-11:00 и 11:30-12:30
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 10, 0), End: at(t, 11, 0)},
		{Start: at(t, 11, 30), End: at(t, 12, 30)},
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	free := FreeIntervals(rangeStart, rangeEnd, merged)

	require.Len(t, free, 3)
	assert.Equal(t, Interval{Start: at(t, 9, 0), End: at(t, 10, 0)}, free[0])
	assert.Equal(t, Interval{Start: at(t, 11, 0), End: at(t, 11, 30)}, free[1])
	assert.Equal(t, Interval{Start: at(t, 12, 30), End: at(t, 18, 0)}, free[2])
}

func TestFreeIntervals_BusyAtRangeEdges(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 9, 0), End: at(t, 10, 0)},
		{Start: at(t, 17, 0), End: at(t, 18, 0)},
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	free := FreeIntervals(rangeStart, rangeEnd, merged)

	require.Len(t, free, 1)
	assert.Equal(t, Interval{Start: at(t, 10, 0), End: at(t, 17, 0)}, free[0])
}

// Занятые и свободные интервалы вместе разбивают диапазон точно:
// без пересечений, без дыр, границы смежных интервалов совпадают.
func TestFreeIntervals_PartitionLaw(t *testing.T) {
	rangeStart := at(t, 9, 0)
	rangeEnd := at(t, 18, 0)

	busy := []Interval{
		{Start: at(t, 8, 0), End: at(t, 9, 45)},
		{Start: at(t, 9, 30), End: at(t, 10, 15)},
		{Start: at(t, 10, 15), End: at(t, 11, 0)},
		{Start: at(t, 13, 0), End: at(t, 13, 0)},
		{Start: at(t, 16, 0), End: at(t, 19, 0)},
	}

	merged := MergeBusy(busy, rangeStart, rangeEnd)
	free := FreeIntervals(rangeStart, rangeEnd, merged)

	all := append(append([]Interval{}, merged...), free...)
	require.NotEmpty(t, all)

	// Собираем разбиение по порядку и проверяем стыковку границ
	sortByStart(all)
	assert.Equal(t, rangeStart, all[0].Start)
	for i := 1; i < len(all); i++ {
		assert.Equal(t, all[i-1].End, all[i].Start, "интервалы должны стыковаться без дыр")
	}
	assert.Equal(t, rangeEnd, all[len(all)-1].End)
}

func sortByStart(intervals []Interval) {
	for i := 1; i < len(intervals); i++ {
		for j := i; j > 0 && intervals[j].Start.Before(intervals[j-1].Start); j-- {
			intervals[j], intervals[j-1] = intervals[j-1], intervals[j]
		}
	}
}

func TestInterval_Minutes(t *testing.T) {
	iv := Interval{Start: at(t, 9, 0), End: at(t, 10, 30)}
	assert.Equal(t, 90, iv.Minutes())
}
