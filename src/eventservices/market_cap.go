package eventservices

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

// MarketCapSource reports a symbol's market capitalization in millions, or
// eventmodels.ErrUnavailable when the source has no figure.
type MarketCapSource interface {
	Name() string
	MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error)
}

type FinnhubMarketCapSource struct {
	BaseURL string
	Token   string
}

func (s *FinnhubMarketCapSource) Name() string {
	return "finnhub"
}

func (s *FinnhubMarketCapSource) MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error) {
	return FetchFinnhubMarketCap(ctx, s.BaseURL, s.Token, symbol)
}

type AlphaVantageMarketCapSource struct {
	BaseURL string
	APIKey  string
}

func (s *AlphaVantageMarketCapSource) Name() string {
	return "alpha_vantage"
}

func (s *AlphaVantageMarketCapSource) MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error) {
	return FetchAlphaVantageMarketCap(ctx, s.BaseURL, s.APIKey, symbol)
}

// MarketCapResolver tries each source in order; the first success wins.
// Provider errors are logged and treated as unavailable for that source.
type MarketCapResolver struct {
	Sources []MarketCapSource
}

func (r *MarketCapResolver) MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error) {
	for _, source := range r.Sources {
		marketCap, err := source.MarketCap(ctx, symbol)
		if err == nil {
			return marketCap, nil
		}

		if !errors.Is(err, eventmodels.ErrUnavailable) {
			log.Warnf("MarketCapResolver: %s failed for %s: %v", source.Name(), symbol, err)
		}
	}

	return 0, fmt.Errorf("MarketCapResolver: no source has market cap for %s: %w", symbol, eventmodels.ErrUnavailable)
}
