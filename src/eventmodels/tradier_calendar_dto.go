package eventmodels

import (
	"fmt"
	"time"
)

type TradierCalendarDayDTO struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type TradierCalendarDTO struct {
	Calendar struct {
		Month int `json:"month"`
		Year  int `json:"year"`
		Days  struct {
			Day []TradierCalendarDayDTO `json:"day"`
		} `json:"days"`
	} `json:"calendar"`
}

// OpenSessions returns the dates on which the market was or will be open.
func (dto *TradierCalendarDTO) OpenSessions() ([]time.Time, error) {
	var sessions []time.Time
	for _, day := range dto.Calendar.Days.Day {
		if day.Status != "open" {
			continue
		}

		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return nil, fmt.Errorf("TradierCalendarDTO: OpenSessions: failed to parse date %s: %w", day.Date, err)
		}

		sessions = append(sessions, date)
	}

	return sessions, nil
}
