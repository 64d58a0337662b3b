package utils

import "time"

// NextWeekRange returns the Monday and Friday of the next trading week
// relative to today. A reference date that already falls on a Monday counts
// as "this week" in live mode; with atLeastWeekAhead the range always starts
// at least seven days out, which backtests use to leave room for a
// pre-earnings entry. The Monday push in backtest mode is intentional: a
// plain modulo of the weekday would keep a Monday reference in its own week
// and leave no sessions for the entry offset.
func NextWeekRange(today time.Time, atLeastWeekAhead bool) (time.Time, time.Time) {
	// Monday == 0, Sunday == 6.
	weekday := (int(today.Weekday()) + 6) % 7

	days := (7 - weekday) % 7
	if atLeastWeekAhead && days == 0 {
		days = 7
	}

	monday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	friday := monday.AddDate(0, 0, 4)

	return monday, friday
}
