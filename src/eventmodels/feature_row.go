package eventmodels

import "time"

// FeatureRow is the live-mode counterpart of StraddleRecord: the same feature
// columns without a gain label. The label is supplied downstream by the
// classifier's Predict.
type FeatureRow struct {
	Symbol           StockSymbol
	EarningsDate     time.Time
	PriceChangeRatio float64
	CurrentPrice     float64
	CallStrike       float64
	PutStrike        float64
	Expiration       time.Time
	BuyCallPrice     float64
	BuyPutPrice      float64
	CallVolume       int
	CallOpenInterest int
	PutVolume        int
	PutOpenInterest  int

	// CallPutRatio is put premium over call premium. Nil when either premium
	// is zero. Auxiliary feature only, never a gate.
	CallPutRatio *float64
}

func (r *FeatureRow) FeatureVector() []float64 {
	return []float64{
		r.CurrentPrice,
		r.CallStrike,
		r.PutStrike,
		r.BuyCallPrice,
		r.BuyPutPrice,
		float64(r.CallVolume),
		float64(r.CallOpenInterest),
		float64(r.PutVolume),
		float64(r.PutOpenInterest),
	}
}
