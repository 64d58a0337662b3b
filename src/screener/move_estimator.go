package screener

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

type EarningsDatesFetcher interface {
	EarningsDates(ctx context.Context, symbol eventmodels.StockSymbol, cutoff time.Time) ([]time.Time, error)
}

type PriceHistoryFetcher interface {
	DailyCloses(ctx context.Context, symbol eventmodels.StockSymbol, start, end time.Time) ([]eventmodels.DailyClose, error)
}

// MoveEstimator computes the average absolute close-to-close move across the
// most recent earnings events at or before a cutoff. The cutoff is the only
// difference between live and backtest estimation.
type MoveEstimator struct {
	Earnings EarningsDatesFetcher
	Prices   PriceHistoryFetcher

	// BracketWindowDays bounds the history fetched around each event. Five
	// calendar days is enough to guarantee a session on both sides.
	BracketWindowDays int
}

func (e *MoveEstimator) bracketWindow() int {
	if e.BracketWindowDays > 0 {
		return e.BracketWindowDays
	}

	return 5
}

func (e *MoveEstimator) Estimate(ctx context.Context, symbol eventmodels.StockSymbol, cutoff time.Time) (*eventmodels.MoveEstimate, error) {
	dates, err := e.Earnings.EarningsDates(ctx, symbol, cutoff)
	if err != nil {
		return nil, fmt.Errorf("MoveEstimator: Estimate: failed to fetch earnings dates for %s: %w", symbol, err)
	}

	var pastDates []time.Time
	for _, d := range dates {
		if d.After(cutoff) {
			continue
		}

		pastDates = append(pastDates, d)
	}

	if len(pastDates) < eventmodels.RequiredMoveEstimateSampleSize {
		return nil, fmt.Errorf("MoveEstimator: Estimate: %s has %d past earnings events, need %d: %w", symbol, len(pastDates), eventmodels.RequiredMoveEstimateSampleSize, eventmodels.ErrUnavailable)
	}

	sort.Slice(pastDates, func(i, j int) bool {
		return pastDates[i].After(pastDates[j])
	})

	recent := pastDates[:eventmodels.RequiredMoveEstimateSampleSize]

	var changes []float64
	for _, eventDate := range recent {
		change, err := e.eventMove(ctx, symbol, eventDate)
		if err != nil {
			// Events with missing history are skipped, not fatal.
			log.Debugf("MoveEstimator: Estimate: skipping %s event on %s: %v", symbol, eventDate.Format("2006-01-02"), err)
			continue
		}

		changes = append(changes, change)
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("MoveEstimator: Estimate: no usable price brackets for %s: %w", symbol, eventmodels.ErrUnavailable)
	}

	mean, err := stats.Mean(changes)
	if err != nil {
		return nil, fmt.Errorf("MoveEstimator: Estimate: failed to calculate mean: %w", err)
	}

	return &eventmodels.MoveEstimate{
		Symbol:           symbol,
		AsOf:             cutoff,
		AverageAbsChange: mean,
		SampleSize:       len(changes),
	}, nil
}

// eventMove returns abs(close after − close before) around a single event.
func (e *MoveEstimator) eventMove(ctx context.Context, symbol eventmodels.StockSymbol, eventDate time.Time) (float64, error) {
	window := e.bracketWindow()

	closes, err := e.Prices.DailyCloses(ctx, symbol, eventDate.AddDate(0, 0, -window), eventDate.AddDate(0, 0, window))
	if err != nil {
		return 0, err
	}

	var before, after *eventmodels.DailyClose
	for i := range closes {
		c := closes[i]
		if c.Date.Before(eventDate) {
			before = &closes[i]
		} else if c.Date.After(eventDate) && after == nil {
			after = &closes[i]
		}
	}

	if before == nil || after == nil {
		return 0, eventmodels.ErrUnavailable
	}

	return math.Abs(after.Close - before.Close), nil
}
