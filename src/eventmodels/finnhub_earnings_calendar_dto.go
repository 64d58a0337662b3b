package eventmodels

import (
	"fmt"
	"time"
)

type FinnhubEarningsEntryDTO struct {
	Date   string `json:"date"`
	Symbol string `json:"symbol"`
}

type FinnhubEarningsCalendarDTO struct {
	EarningsCalendar []FinnhubEarningsEntryDTO `json:"earningsCalendar"`
}

func (dto *FinnhubEarningsEntryDTO) ToModel() (*EarningsEvent, error) {
	announcementDate, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, fmt.Errorf("FinnhubEarningsEntryDTO: ToModel: failed to parse date %s: %w", dto.Date, err)
	}

	return &EarningsEvent{
		Symbol:           NewStockSymbol(dto.Symbol),
		AnnouncementDate: announcementDate,
	}, nil
}
