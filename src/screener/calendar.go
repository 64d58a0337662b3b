package screener

import (
	"fmt"
	"sort"
	"time"
)

// CalendarLookupError marks a session lookup that cannot be satisfied by the
// loaded calendar window. Callers treat it as "no valid record" for the row,
// not a batch failure.
type CalendarLookupError struct {
	Reference time.Time
	Offset    int
	Reason    string
}

func (e *CalendarLookupError) Error() string {
	return fmt.Sprintf("calendar lookup failed for %s (offset %d): %s", e.Reference.Format("2006-01-02"), e.Offset, e.Reason)
}

// TradingCalendar navigates an authoritative list of market sessions.
type TradingCalendar struct {
	sessions []time.Time
}

func NewTradingCalendar(sessions []time.Time) *TradingCalendar {
	normalized := make([]time.Time, 0, len(sessions))
	seen := make(map[time.Time]bool)

	for _, s := range sessions {
		day := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
		if seen[day] {
			continue
		}

		seen[day] = true
		normalized = append(normalized, day)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Before(normalized[j])
	})

	return &TradingCalendar{sessions: normalized}
}

func (c *TradingCalendar) Len() int {
	return len(c.sessions)
}

// Offset returns the session k sessions before ref. Negative k walks forward.
func (c *TradingCalendar) Offset(ref time.Time, k int) (time.Time, error) {
	if len(c.sessions) == 0 {
		return time.Time{}, &CalendarLookupError{Reference: ref, Offset: k, Reason: "no sessions loaded"}
	}

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(c.sessions[0]) || day.After(c.sessions[len(c.sessions)-1]) {
		return time.Time{}, &CalendarLookupError{Reference: ref, Offset: k, Reason: "reference date outside loaded calendar range"}
	}

	pos := sort.Search(len(c.sessions), func(i int) bool {
		return !c.sessions[i].Before(day)
	})

	if pos == len(c.sessions) || !c.sessions[pos].Equal(day) {
		return time.Time{}, &CalendarLookupError{Reference: ref, Offset: k, Reason: "reference date is not a trading session"}
	}

	target := pos - k
	if target < 0 {
		return time.Time{}, &CalendarLookupError{Reference: ref, Offset: k, Reason: "not enough prior sessions in the loaded window"}
	}

	if target >= len(c.sessions) {
		return time.Time{}, &CalendarLookupError{Reference: ref, Offset: k, Reason: "not enough later sessions in the loaded window"}
	}

	return c.sessions[target], nil
}
