package eventmodels

import "time"

// ScreenCandidate is one row of the earnings screen: a symbol with an upcoming
// announcement that passed the market cap and price change ratio filters.
type ScreenCandidate struct {
	Symbol           StockSymbol `csv:"symbol"`
	EarningsDate     time.Time   `csv:"date"`
	MarketCap        float64     `csv:"market_cap"`
	AverageAbsChange float64     `csv:"average_price_change"`
	CurrentPrice     float64     `csv:"current_price"`
	PriceChangeRatio float64     `csv:"price_change_ratio"`
}
