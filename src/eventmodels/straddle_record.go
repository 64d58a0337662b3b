package eventmodels

import "time"

// StraddleRecord is the unit of analysis: one evaluated straddle per symbol
// per earnings event. A record exists only if every upstream lookup succeeded.
type StraddleRecord struct {
	Symbol             StockSymbol
	EarningsDate       time.Time
	EntryDate          time.Time
	ExitDate           time.Time
	PriceChangeRatio   float64
	CurrentPrice       float64
	CallStrike         float64
	PutStrike          float64
	Expiration         time.Time
	BuyCallPrice       float64
	BuyPutPrice        float64
	CallVolume         int
	CallOpenInterest   int
	PutVolume          int
	PutOpenInterest    int
	CallPriceChangePct float64
	PutPriceChangePct  float64
	TotalGainPct       float64
	GainLabel          bool
}

// FeatureVector returns the record's features in canonical column order. The
// classifier is trained and queried against this exact layout.
func (r *StraddleRecord) FeatureVector() []float64 {
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
