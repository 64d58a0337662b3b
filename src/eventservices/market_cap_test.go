package eventservices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

type stubMarketCapSource struct {
	name  string
	cap   float64
	err   error
	calls int
}

func (s *stubMarketCapSource) Name() string {
	return s.name
}

func (s *stubMarketCapSource) MarketCap(ctx context.Context, symbol eventmodels.StockSymbol) (float64, error) {
	s.calls++
	return s.cap, s.err
}

func TestMarketCapResolver(t *testing.T) {
	t.Run("first source wins", func(t *testing.T) {
		primary := &stubMarketCapSource{name: "primary", cap: 1200}
		fallback := &stubMarketCapSource{name: "fallback", cap: 900}
		resolver := &MarketCapResolver{Sources: []MarketCapSource{primary, fallback}}

		marketCap, err := resolver.MarketCap(context.Background(), "ACME")
		require.NoError(t, err)
		assert.Equal(t, 1200.0, marketCap)
		assert.Zero(t, fallback.calls)
	})

	t.Run("unavailable primary falls through", func(t *testing.T) {
		primary := &stubMarketCapSource{name: "primary", err: eventmodels.ErrUnavailable}
		fallback := &stubMarketCapSource{name: "fallback", cap: 900}
		resolver := &MarketCapResolver{Sources: []MarketCapSource{primary, fallback}}

		marketCap, err := resolver.MarketCap(context.Background(), "ACME")
		require.NoError(t, err)
		assert.Equal(t, 900.0, marketCap)
	})

	t.Run("provider error is treated as unavailable for that source", func(t *testing.T) {
		primary := &stubMarketCapSource{name: "primary", err: errors.New("rate limited")}
		fallback := &stubMarketCapSource{name: "fallback", cap: 900}
		resolver := &MarketCapResolver{Sources: []MarketCapSource{primary, fallback}}

		marketCap, err := resolver.MarketCap(context.Background(), "ACME")
		require.NoError(t, err)
		assert.Equal(t, 900.0, marketCap)
	})

	t.Run("all sources empty is unavailable", func(t *testing.T) {
		resolver := &MarketCapResolver{Sources: []MarketCapSource{
			&stubMarketCapSource{name: "primary", err: eventmodels.ErrUnavailable},
			&stubMarketCapSource{name: "fallback", err: eventmodels.ErrUnavailable},
		}}

		_, err := resolver.MarketCap(context.Background(), "ACME")
		require.Error(t, err)
		assert.True(t, errors.Is(err, eventmodels.ErrUnavailable))
	})
}

type stubPriceHistorySource struct {
	name   string
	closes []eventmodels.DailyClose
	err    error
}

func (s *stubPriceHistorySource) Name() string {
	return s.name
}

func (s *stubPriceHistorySource) DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	return s.closes, s.err
}

func TestFallbackPriceHistory(t *testing.T) {
	closes := []eventmodels.DailyClose{
		{Date: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), Close: 50},
	}

	t.Run("empty result falls through to the next source", func(t *testing.T) {
		history := &FallbackPriceHistory{Sources: []PriceHistorySource{
			&stubPriceHistorySource{name: "primary"},
			&stubPriceHistorySource{name: "fallback", closes: closes},
		}}

		got, err := history.DailyCloses(context.Background(), "ACME", time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, closes, got)
	})

	t.Run("all sources exhausted is unavailable", func(t *testing.T) {
		history := &FallbackPriceHistory{Sources: []PriceHistorySource{
			&stubPriceHistorySource{name: "primary", err: eventmodels.ErrUnavailable},
		}}

		_, err := history.DailyCloses(context.Background(), "ACME", time.Time{}, time.Time{})
		assert.True(t, errors.Is(err, eventmodels.ErrUnavailable))
	})
}
