package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestNextWeekRange(t *testing.T) {
	t.Run("midweek reference rolls to the coming Monday", func(t *testing.T) {
		monday, friday := NextWeekRange(date("2024-06-12"), false) // Wednesday
		assert.Equal(t, date("2024-06-17"), monday)
		assert.Equal(t, date("2024-06-21"), friday)
	})

	t.Run("Sunday reference starts the next day", func(t *testing.T) {
		monday, friday := NextWeekRange(date("2024-06-16"), false)
		assert.Equal(t, date("2024-06-17"), monday)
		assert.Equal(t, date("2024-06-21"), friday)
	})

	t.Run("Monday reference counts as the current week in live mode", func(t *testing.T) {
		monday, friday := NextWeekRange(date("2024-06-17"), false)
		assert.Equal(t, date("2024-06-17"), monday)
		assert.Equal(t, date("2024-06-21"), friday)
	})

	t.Run("Monday reference is pushed a full week ahead for backtests", func(t *testing.T) {
		monday, friday := NextWeekRange(date("2024-06-17"), true)
		assert.Equal(t, date("2024-06-24"), monday)
		assert.Equal(t, date("2024-06-28"), friday)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		ref := time.Date(2024, 6, 12, 15, 30, 45, 0, time.UTC)
		monday, _ := NextWeekRange(ref, false)
		assert.Equal(t, date("2024-06-17"), monday)
	})
}
