package screener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func juneSessions() []time.Time {
	// NYSE sessions, first three weeks of June 2024. June 19 (Juneteenth)
	// was a market holiday.
	var sessions []time.Time
	for _, d := range []string{
		"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07",
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14",
		"2024-06-17", "2024-06-18", "2024-06-20", "2024-06-21",
	} {
		sessions = append(sessions, day(d))
	}

	return sessions
}

func TestTradingCalendarOffset(t *testing.T) {
	calendar := NewTradingCalendar(juneSessions())

	t.Run("one session before skips the holiday", func(t *testing.T) {
		got, err := calendar.Offset(day("2024-06-20"), 1)
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-18"), got)
	})

	t.Run("seven sessions before crosses two weekends", func(t *testing.T) {
		got, err := calendar.Offset(day("2024-06-20"), 7)
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-10"), got)
	})

	t.Run("negative offset walks forward", func(t *testing.T) {
		got, err := calendar.Offset(day("2024-06-18"), -1)
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-20"), got)
	})

	t.Run("reference outside the loaded range", func(t *testing.T) {
		_, err := calendar.Offset(day("2024-07-01"), 1)
		require.Error(t, err)

		var lookupErr *CalendarLookupError
		assert.ErrorAs(t, err, &lookupErr)
	})

	t.Run("not enough prior sessions", func(t *testing.T) {
		_, err := calendar.Offset(day("2024-06-05"), 7)
		require.Error(t, err)

		var lookupErr *CalendarLookupError
		assert.ErrorAs(t, err, &lookupErr)
	})

	t.Run("reference on a non-session day", func(t *testing.T) {
		_, err := calendar.Offset(day("2024-06-19"), 1)
		require.Error(t, err)

		var lookupErr *CalendarLookupError
		assert.ErrorAs(t, err, &lookupErr)
	})
}

func TestTradingCalendarNormalizesInput(t *testing.T) {
	// Unordered, duplicated input with non-midnight timestamps.
	calendar := NewTradingCalendar([]time.Time{
		time.Date(2024, 6, 4, 15, 30, 0, 0, time.UTC),
		day("2024-06-03"),
		day("2024-06-04"),
		day("2024-06-05"),
	})

	assert.Equal(t, 3, calendar.Len())

	got, err := calendar.Offset(day("2024-06-05"), 2)
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-03"), got)
}
