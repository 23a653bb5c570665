package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGridShape(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month0 := 0; month0 < 12; month0++ {
			grid := MonthGrid(year, month0)

			assert.Equal(t, 0, len(grid)%7, "year=%d month0=%d: length must be a multiple of 7", year, month0)
			assert.Equal(t, time.Sunday, grid[0].Weekday(), "year=%d month0=%d: grid must start on Sunday", year, month0)
			assert.Equal(t, time.Saturday, grid[len(grid)-1].Weekday(), "year=%d month0=%d: grid must end on Saturday", year, month0)

			for i := 1; i < len(grid); i++ {
				assert.Equal(t, 1, DaysBetween(grid[i-1], grid[i]), "grid must be contiguous")
			}

			first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local)
			assert.True(t, WithinInterval(first, grid[0], grid[len(grid)-1]))
			assert.True(t, WithinInterval(EndOfMonth(first), grid[0], grid[len(grid)-1]))
		}
	}
}

func TestMonthGridFebruary2024(t *testing.T) {
	grid := MonthGrid(2024, 1)

	require.Len(t, grid, 35)
	assert.Equal(t, "2024-01-28", FormatYMD(grid[0]))
	assert.Equal(t, "2024-03-02", FormatYMD(grid[len(grid)-1]))
}

func TestParseFormatRoundTrip(t *testing.T) {
	d, err := ParseYMD("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatYMD(d))

	_, err = ParseYMD("not-a-date")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseYMD("2024-02-10")
	b, _ := ParseYMD("2024-02-12")

	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 3, DaysBetweenInclusive(a, b))
	assert.Equal(t, 1, DaysBetweenInclusive(a, a))
}

func TestDaysBetweenAcrossDSTBoundary(t *testing.T) {
	// March 2024 contains a DST transition in many locales; calendar-day
	// arithmetic must not be off by one because of the short/long day.
	a, _ := ParseYMD("2024-03-01")
	b, _ := ParseYMD("2024-04-01")
	assert.Equal(t, 31, DaysBetween(a, b))
	assert.Equal(t, b, AddDays(a, 31))
}

func TestAddWeeks(t *testing.T) {
	a, _ := ParseYMD("2024-02-10")
	assert.Equal(t, "2024-02-24", FormatYMD(AddWeeks(a, 2)))
}

func TestStartEndOfMonth(t *testing.T) {
	d, _ := ParseYMD("2024-02-15")
	assert.Equal(t, "2024-02-01", FormatYMD(StartOfMonth(d)))
	assert.Equal(t, "2024-02-29", FormatYMD(EndOfMonth(d)))

	d, _ = ParseYMD("2023-12-31")
	assert.Equal(t, "2023-12-31", FormatYMD(EndOfMonth(d)))
}

func TestWithinInterval(t *testing.T) {
	start, _ := ParseYMD("2024-02-10")
	end, _ := ParseYMD("2024-02-12")

	assert.True(t, WithinInterval(start, start, end))
	assert.True(t, WithinInterval(end, start, end))
	assert.False(t, WithinInterval(AddDays(start, -1), start, end))
	assert.False(t, WithinInterval(AddDays(end, 1), start, end))
}
