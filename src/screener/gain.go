package screener

import (
	"context"
	"fmt"
	"time"

	"github.com/jiaming2012/earnings-straddle/src/eventmodels"
)

// StraddleQuoteFetcher returns both legs' snapshot on a trade date, or
// eventmodels.ErrUnavailable when the provider has no quote for the contract
// on that date.
type StraddleQuoteFetcher interface {
	StraddleQuote(ctx context.Context, symbol eventmodels.StockSymbol, tradeDate, expiration time.Time, callStrike, putStrike float64) (*eventmodels.StraddleQuote, error)
}

// PriceChangePct is the percentage change between two ask prices. Undefined
// when the entry ask is zero; the caller discards the row.
func PriceChangePct(entryAsk, exitAsk float64) (float64, error) {
	if entryAsk == 0 {
		return 0, fmt.Errorf("PriceChangePct: entry ask is zero: %w", eventmodels.ErrUnavailable)
	}

	return (exitAsk - entryAsk) / entryAsk * 100, nil
}

// TotalGainPct is the equal-weight blended straddle return.
func TotalGainPct(callPct, putPct float64) float64 {
	return (callPct + putPct) / 2
}

func GainLabel(totalGainPct float64) bool {
	return totalGainPct > 0
}

// CallPutRatio is put premium over call premium, undefined when either
// premium is zero.
func CallPutRatio(callPremium, putPremium float64) (float64, error) {
	if callPremium == 0 || putPremium == 0 {
		return 0, fmt.Errorf("CallPutRatio: zero premium: %w", eventmodels.ErrUnavailable)
	}

	return putPremium / callPremium, nil
}

// StraddleGain holds the per-leg and blended returns between two snapshots.
type StraddleGain struct {
	CallPct  float64
	PutPct   float64
	TotalPct float64
	Label    bool
}

func ComputeStraddleGain(entry, exit *eventmodels.StraddleQuote) (*StraddleGain, error) {
	callPct, err := PriceChangePct(entry.CallAsk, exit.CallAsk)
	if err != nil {
		return nil, fmt.Errorf("ComputeStraddleGain: call leg: %w", err)
	}

	putPct, err := PriceChangePct(entry.PutAsk, exit.PutAsk)
	if err != nil {
		return nil, fmt.Errorf("ComputeStraddleGain: put leg: %w", err)
	}

	total := TotalGainPct(callPct, putPct)

	return &StraddleGain{
		CallPct:  callPct,
		PutPct:   putPct,
		TotalPct: total,
		Label:    GainLabel(total),
	}, nil
}
