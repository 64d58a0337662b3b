package eventservices

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

// PriceHistorySource returns ordered (ascending) daily closes for a symbol,
// or eventmodels.ErrUnavailable when the source has no history in the range.
type PriceHistorySource interface {
	Name() string
	DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error)
}

// FallbackPriceHistory tries each source in order; the first non-empty result
// wins. Provider errors are row-scoped: they are logged and the next source
// is consulted.
type FallbackPriceHistory struct {
	Sources []PriceHistorySource
}

func (f *FallbackPriceHistory) DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	for _, source := range f.Sources {
		closes, err := source.DailyCloses(ctx, symbol, start, end)
		if err == nil && len(closes) > 0 {
			return closes, nil
		}

		if err != nil && !errors.Is(err, eventmodels.ErrUnavailable) {
			log.Warnf("FallbackPriceHistory: %s failed for %s: %v", source.Name(), symbol, err)
		}
	}

	return nil, fmt.Errorf("FallbackPriceHistory: no source has daily closes for %s: %w", symbol, eventmodels.ErrUnavailable)
}
