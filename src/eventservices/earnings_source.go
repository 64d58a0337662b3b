package eventservices

import (
	"context"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

// FinnhubEarningsSource adapts the Finnhub earnings calendar to the screener
// interfaces. HistoryYears bounds how far back per-symbol announcement dates
// are queried; four quarters plus slack is enough for the move estimate.
type FinnhubEarningsSource struct {
	BaseURL      string
	Token        string
	HistoryYears int
}

func (s *FinnhubEarningsSource) Calendar(ctx context.Context, from, to time.Time) ([]eventmodels.EarningsEvent, error) {
	return FetchFinnhubEarningsCalendar(ctx, s.BaseURL, s.Token, from, to)
}

func (s *FinnhubEarningsSource) EarningsDates(ctx context.Context, symbol eventmodels.StockSymbol, cutoff time.Time) ([]time.Time, error) {
	years := s.HistoryYears
	if years <= 0 {
		years = 3
	}

	return FetchFinnhubEarningsDates(ctx, s.BaseURL, s.Token, symbol, cutoff.AddDate(-years, 0, 0), cutoff)
}
