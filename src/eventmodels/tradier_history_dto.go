package eventmodels

import (
	"fmt"
	"time"
)

type TradierHistoryDayDTO struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int     `json:"volume"`
}

type TradierHistoryDTO struct {
	History struct {
		Day []TradierHistoryDayDTO `json:"day"`
	} `json:"history"`
}

func (dto *TradierHistoryDTO) ToDailyCloses() ([]DailyClose, error) {
	var closes []DailyClose
	for _, day := range dto.History.Day {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return nil, fmt.Errorf("TradierHistoryDTO: ToDailyCloses: failed to parse date %s: %w", day.Date, err)
		}

		closes = append(closes, DailyClose{
			Date:  date,
			Close: day.Close,
		})
	}

	return closes, nil
}
