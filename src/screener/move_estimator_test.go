package screener

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

type fakeEarningsDates struct {
	dates []time.Time
	err   error
}

func (f *fakeEarningsDates) EarningsDates(ctx context.Context, symbol eventmodels.StockSymbol, cutoff time.Time) ([]time.Time, error) {
	return f.dates, f.err
}

type fakePriceHistory struct {
	closes map[string][]eventmodels.DailyClose
}

func (f *fakePriceHistory) DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error) {
	var out []eventmodels.DailyClose
	for _, c := range f.closes[symbol.String()] {
		if c.Date.Before(start) || c.Date.After(end) {
			continue
		}

		out = append(out, c)
	}

	if len(out) == 0 {
		return nil, eventmodels.ErrUnavailable
	}

	return out, nil
}

func bracket(closes *fakePriceHistory, symbol string, eventDate time.Time, before, after float64) {
	closes.closes[symbol] = append(closes.closes[symbol],
		eventmodels.DailyClose{Date: eventDate.AddDate(0, 0, -1), Close: before},
		eventmodels.DailyClose{Date: eventDate.AddDate(0, 0, 1), Close: after},
	)
}

func TestMoveEstimator(t *testing.T) {
	cutoff := day("2024-06-16")

	events := []time.Time{
		day("2023-07-20"), day("2023-10-19"), day("2024-01-18"), day("2024-04-18"),
	}

	t.Run("mean of absolute changes across four events", func(t *testing.T) {
		prices := &fakePriceHistory{closes: map[string][]eventmodels.DailyClose{}}
		bracket(prices, "ACME", events[0], 100, 104) // +4
		bracket(prices, "ACME", events[1], 104, 102) // -2
		bracket(prices, "ACME", events[2], 102, 108) // +6
		bracket(prices, "ACME", events[3], 108, 104) // -4

		estimator := &MoveEstimator{
			Earnings: &fakeEarningsDates{dates: events},
			Prices:   prices,
		}

		estimate, err := estimator.Estimate(context.Background(), "ACME", cutoff)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, estimate.AverageAbsChange, 1e-9)
		assert.Equal(t, 4, estimate.SampleSize)
	})

	t.Run("fewer than four past events is unavailable", func(t *testing.T) {
		estimator := &MoveEstimator{
			Earnings: &fakeEarningsDates{dates: events[:3]},
			Prices:   &fakePriceHistory{closes: map[string][]eventmodels.DailyClose{}},
		}

		_, err := estimator.Estimate(context.Background(), "ACME", cutoff)
		require.Error(t, err)
		assert.True(t, errors.Is(err, eventmodels.ErrUnavailable))
	})

	t.Run("future events do not count toward the four", func(t *testing.T) {
		withFuture := append([]time.Time{}, events[:3]...)
		withFuture = append(withFuture, day("2024-07-18"))

		estimator := &MoveEstimator{
			Earnings: &fakeEarningsDates{dates: withFuture},
			Prices:   &fakePriceHistory{closes: map[string][]eventmodels.DailyClose{}},
		}

		_, err := estimator.Estimate(context.Background(), "ACME", cutoff)
		require.Error(t, err)
		assert.True(t, errors.Is(err, eventmodels.ErrUnavailable))
	})

	t.Run("events with missing history are skipped", func(t *testing.T) {
		prices := &fakePriceHistory{closes: map[string][]eventmodels.DailyClose{}}
		bracket(prices, "ACME", events[2], 100, 103)
		bracket(prices, "ACME", events[3], 103, 98)

		estimator := &MoveEstimator{
			Earnings: &fakeEarningsDates{dates: events},
			Prices:   prices,
		}

		estimate, err := estimator.Estimate(context.Background(), "ACME", cutoff)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, estimate.AverageAbsChange, 1e-9)
		assert.Equal(t, 2, estimate.SampleSize)
	})

	t.Run("no usable brackets is unavailable", func(t *testing.T) {
		estimator := &MoveEstimator{
			Earnings: &fakeEarningsDates{dates: events},
			Prices:   &fakePriceHistory{closes: map[string][]eventmodels.DailyClose{}},
		}

		_, err := estimator.Estimate(context.Background(), "ACME", cutoff)
		require.Error(t, err)
		assert.True(t, errors.Is(err, eventmodels.ErrUnavailable))
	})
}
