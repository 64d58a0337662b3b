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

type fakeChains struct {
	expirations []time.Time
	snapshots   map[string]*eventmodels.OptionChainSnapshot
}

func (f *fakeChains) Expirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]time.Time, error) {
	return f.expirations, nil
}

func (f *fakeChains) Chain(ctx context.Context, symbol eventmodels.StockSymbol, expiration time.Time) (*eventmodels.OptionChainSnapshot, error) {
	snapshot, ok := f.snapshots[expiration.Format("2006-01-02")]
	if !ok {
		return nil, eventmodels.ErrUnavailable
	}

	return snapshot, nil
}

type fakeHistoricalStrikes struct {
	listings []eventmodels.PointInTimeStrike
	err      error
}

func (f *fakeHistoricalStrikes) Strikes(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate time.Time) ([]eventmodels.PointInTimeStrike, error) {
	return f.listings, f.err
}

func quotes(strikes ...float64) []eventmodels.OptionQuote {
	var out []eventmodels.OptionQuote
	for _, s := range strikes {
		out = append(out, eventmodels.OptionQuote{Strike: s, LastPrice: 1.0, Volume: 10, OpenInterest: 100})
	}

	return out
}

func TestClosestStrike(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got, err := closestStrike(100, []float64{95, 100, 105})
		require.NoError(t, err)
		assert.Equal(t, 100.0, got)
	})

	t.Run("nearest below", func(t *testing.T) {
		got, err := closestStrike(97.5, []float64{95, 100})
		require.NoError(t, err)
		assert.Equal(t, 95.0, got)
	})

	t.Run("equidistant tie resolves to the first listed strike", func(t *testing.T) {
		got, err := closestStrike(97, []float64{96, 98})
		require.NoError(t, err)
		assert.Equal(t, 96.0, got)
	})

	t.Run("empty universe", func(t *testing.T) {
		_, err := closestStrike(100, nil)
		assert.True(t, errors.Is(err, eventmodels.ErrNoMatchingContract))
	})
}

func TestSelectLive(t *testing.T) {
	earningsDate := day("2024-06-20")

	chains := &fakeChains{
		expirations: []time.Time{day("2024-06-14"), day("2024-06-21"), day("2024-06-28")},
		snapshots: map[string]*eventmodels.OptionChainSnapshot{
			"2024-06-21": {
				Symbol:     "ACME",
				Expiration: day("2024-06-21"),
				Calls:      quotes(45, 50, 55),
				Puts:       quotes(45, 50, 55),
			},
		},
	}

	selector := &ContractSelector{Chains: chains}

	t.Run("earliest expiration strictly after the earnings date", func(t *testing.T) {
		contract, quote, err := selector.SelectLive(context.Background(), "ACME", 53, earningsDate, eventmodels.OptionTypeCall)
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-21"), contract.Expiration)
		assert.Equal(t, 55.0, contract.Strike)
		assert.Equal(t, 55.0, quote.Strike)
	})

	t.Run("put side picks its own nearest strike", func(t *testing.T) {
		contract, _, err := selector.SelectLive(context.Background(), "ACME", 47, earningsDate, eventmodels.OptionTypePut)
		require.NoError(t, err)
		assert.Equal(t, 45.0, contract.Strike)
		assert.Equal(t, eventmodels.OptionTypePut, contract.OptionType)
	})

	t.Run("no expiration after the earnings date", func(t *testing.T) {
		late := &ContractSelector{Chains: &fakeChains{expirations: []time.Time{day("2024-06-14")}}}

		_, _, err := late.SelectLive(context.Background(), "ACME", 53, earningsDate, eventmodels.OptionTypeCall)
		assert.True(t, errors.Is(err, eventmodels.ErrNoMatchingContract))
	})

	t.Run("empty side chain", func(t *testing.T) {
		empty := &ContractSelector{Chains: &fakeChains{
			expirations: []time.Time{day("2024-06-21")},
			snapshots: map[string]*eventmodels.OptionChainSnapshot{
				"2024-06-21": {Symbol: "ACME", Expiration: day("2024-06-21"), Calls: quotes(50)},
			},
		}}

		_, _, err := empty.SelectLive(context.Background(), "ACME", 47, earningsDate, eventmodels.OptionTypePut)
		assert.True(t, errors.Is(err, eventmodels.ErrNoMatchingContract))
	})
}

func TestSelectPointInTime(t *testing.T) {
	tradeDate := day("2024-06-20")

	listings := []eventmodels.PointInTimeStrike{
		{Expiration: day("2024-06-14"), Strike: 50}, // before the trade date, ignored
		{Expiration: day("2024-06-21"), Strike: 50},
		{Expiration: day("2024-06-28"), Strike: 45},
		{Expiration: day("2024-06-28"), Strike: 50},
		{Expiration: day("2024-06-28"), Strike: 55},
		{Expiration: day("2024-07-19"), Strike: 50},
	}

	selector := &ContractSelector{Historical: &fakeHistoricalStrikes{listings: listings}}

	t.Run("second-earliest expiration, combined strike universe", func(t *testing.T) {
		selection, err := selector.SelectPointInTime(context.Background(), "ACME", tradeDate, 53, 47)
		require.NoError(t, err)
		assert.Equal(t, day("2024-06-28"), selection.Expiration)
		assert.Equal(t, 55.0, selection.CallStrike)
		assert.Equal(t, 45.0, selection.PutStrike)
	})

	t.Run("fewer than two valid expirations", func(t *testing.T) {
		single := &ContractSelector{Historical: &fakeHistoricalStrikes{listings: listings[:2]}}

		_, err := single.SelectPointInTime(context.Background(), "ACME", tradeDate, 53, 47)
		assert.True(t, errors.Is(err, eventmodels.ErrNoMatchingContract))
	})

	t.Run("no listings", func(t *testing.T) {
		none := &ContractSelector{Historical: &fakeHistoricalStrikes{err: eventmodels.ErrUnavailable}}

		_, err := none.SelectPointInTime(context.Background(), "ACME", tradeDate, 53, 47)
		assert.Error(t, err)
	})
}
