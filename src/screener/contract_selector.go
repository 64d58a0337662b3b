package screener

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

type ChainFetcher interface {
	Expirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]time.Time, error)
	Chain(ctx context.Context, symbol eventmodels.StockSymbol, expiration time.Time) (*eventmodels.OptionChainSnapshot, error)
}

type PointInTimeStrikesFetcher interface {
	Strikes(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate time.Time) ([]eventmodels.PointInTimeStrike, error)
}

// ContractSelector picks the straddle legs nearest to the target strikes. The
// live and point-in-time paths differ deliberately: the historical provider's
// listings do not match live ones, so backtests enter at the second-nearest
// expiration and draw both legs from one combined strike universe.
type ContractSelector struct {
	Chains     ChainFetcher
	Historical PointInTimeStrikesFetcher
}

// RoundedMove rounds the estimated move to the nearest whole currency unit.
func RoundedMove(move float64) float64 {
	return math.Round(move)
}

// closestStrike minimizes abs(strike − target). Equal-distance ties resolve
// to the first listed strike, the lower one in an ascending chain.
func closestStrike(target float64, strikes []float64) (float64, error) {
	if len(strikes) == 0 {
		return 0, eventmodels.ErrNoMatchingContract
	}

	best := strikes[0]
	for _, s := range strikes[1:] {
		if math.Abs(s-target) < math.Abs(best-target) {
			best = s
		}
	}

	return best, nil
}

// SelectLive picks the earliest expiration strictly after afterDate and the
// nearest strike on the requested side. The chosen quote is returned with the
// contract so the caller can read the premium, volume and open interest.
func (s *ContractSelector) SelectLive(ctx context.Context, symbol eventmodels.StockSymbol, targetStrike float64, afterDate time.Time, side eventmodels.OptionType) (*eventmodels.SelectedContract, *eventmodels.OptionQuote, error) {
	if err := side.Validate(); err != nil {
		return nil, nil, fmt.Errorf("ContractSelector: SelectLive: %w", err)
	}

	expirations, err := s.Chains.Expirations(ctx, symbol)
	if err != nil {
		return nil, nil, fmt.Errorf("ContractSelector: SelectLive: failed to fetch expirations for %s: %w", symbol, err)
	}

	var valid []time.Time
	for _, exp := range expirations {
		if exp.After(afterDate) {
			valid = append(valid, exp)
		}
	}

	if len(valid) == 0 {
		return nil, nil, fmt.Errorf("ContractSelector: SelectLive: no expiration after %s for %s: %w", afterDate.Format("2006-01-02"), symbol, eventmodels.ErrNoMatchingContract)
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Before(valid[j])
	})

	expiration := valid[0]

	snapshot, err := s.Chains.Chain(ctx, symbol, expiration)
	if err != nil {
		return nil, nil, fmt.Errorf("ContractSelector: SelectLive: failed to fetch chain for %s %s: %w", symbol, expiration.Format("2006-01-02"), err)
	}

	quotes := snapshot.Side(side)
	if len(quotes) == 0 {
		return nil, nil, fmt.Errorf("ContractSelector: SelectLive: empty %s chain for %s %s: %w", side, symbol, expiration.Format("2006-01-02"), eventmodels.ErrNoMatchingContract)
	}

	best := quotes[0]
	for _, q := range quotes[1:] {
		if math.Abs(q.Strike-targetStrike) < math.Abs(best.Strike-targetStrike) {
			best = q
		}
	}

	contract := &eventmodels.SelectedContract{
		Symbol:     symbol,
		Expiration: expiration,
		Strike:     best.Strike,
		OptionType: side,
	}

	return contract, &best, nil
}

// StraddleSelection is the backtest selector's output: one expiration and the
// two nearest strikes from the combined universe.
type StraddleSelection struct {
	Symbol     eventmodels.StockSymbol
	Expiration time.Time
	CallStrike float64
	PutStrike  float64
}

// SelectPointInTime picks the second-earliest expiration at or after
// tradeDate from the historical listings and the nearest strikes to both
// targets within it.
func (s *ContractSelector) SelectPointInTime(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate time.Time, callTarget, putTarget float64) (*StraddleSelection, error) {
	listings, err := s.Historical.Strikes(ctx, symbol, tradeDate)
	if err != nil {
		return nil, fmt.Errorf("ContractSelector: SelectPointInTime: failed to fetch strikes for %s: %w", symbol, err)
	}

	var valid []eventmodels.PointInTimeStrike
	for _, l := range listings {
		if l.Expiration.Before(tradeDate) {
			continue
		}

		valid = append(valid, l)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("ContractSelector: SelectPointInTime: no valid expirations for %s on %s: %w", symbol, tradeDate.Format("2006-01-02"), eventmodels.ErrNoMatchingContract)
	}

	var expirations []time.Time
	seen := make(map[time.Time]bool)
	for _, l := range valid {
		if seen[l.Expiration] {
			continue
		}

		seen[l.Expiration] = true
		expirations = append(expirations, l.Expiration)
	}

	sort.Slice(expirations, func(i, j int) bool {
		return expirations[i].Before(expirations[j])
	})

	if len(expirations) < 2 {
		return nil, fmt.Errorf("ContractSelector: SelectPointInTime: need two expirations for %s, have %d: %w", symbol, len(expirations), eventmodels.ErrNoMatchingContract)
	}

	expiration := expirations[1]

	var strikes []float64
	for _, l := range valid {
		if l.Expiration.Equal(expiration) {
			strikes = append(strikes, l.Strike)
		}
	}

	callStrike, err := closestStrike(callTarget, strikes)
	if err != nil {
		return nil, fmt.Errorf("ContractSelector: SelectPointInTime: call strike for %s: %w", symbol, err)
	}

	putStrike, err := closestStrike(putTarget, strikes)
	if err != nil {
		return nil, fmt.Errorf("ContractSelector: SelectPointInTime: put strike for %s: %w", symbol, err)
	}

	return &StraddleSelection{
		Symbol:     symbol,
		Expiration: expiration,
		CallStrike: callStrike,
		PutStrike:  putStrike,
	}, nil
}
