package eventservices

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

// PolygonPriceHistorySource is the fallback daily close source, used when the
// primary provider has no history for a symbol.
type PolygonPriceHistorySource struct {
	Client *polygon.Client
}

func NewPolygonPriceHistorySource(apiKey string) *PolygonPriceHistorySource {
	return &PolygonPriceHistorySource{
		Client: polygon.New(apiKey),
	}
}

func (s *PolygonPriceHistorySource) Name() string {
	return "polygon"
}

func (s *PolygonPriceHistorySource) DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	params := models.ListAggsParams{
		Ticker:     symbol.String(),
		Multiplier: 1,
		Timespan:   "day",
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithOrder(models.Asc).WithAdjusted(false)

	iter := s.Client.ListAggs(ctx, params)

	var closes []eventmodels.DailyClose
	for iter.Next() {
		timestamp := time.Time(iter.Item().Timestamp)

		closes = append(closes, eventmodels.DailyClose{
			Date:  time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, time.UTC),
			Close: iter.Item().Close,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("PolygonPriceHistorySource: DailyCloses: failed to list aggs for %s: %w", symbol, err)
	}

	if len(closes) == 0 {
		return nil, eventmodels.ErrUnavailable
	}

	return closes, nil
}
