package eventmodels

import "time"

// StraddleQuote is a point-in-time snapshot of both legs at a single strike
// pair and expiration on a given trade date.
type StraddleQuote struct {
	Symbol           StockSymbol `json:"symbol"`
	TradeDate        time.Time   `json:"trade_date"`
	Expiration       time.Time   `json:"expiration"`
	CallAsk          float64     `json:"call_ask"`
	CallVolume       int         `json:"call_volume"`
	CallOpenInterest int         `json:"call_open_interest"`
	PutAsk           float64     `json:"put_ask"`
	PutVolume        int         `json:"put_volume"`
	PutOpenInterest  int         `json:"put_open_interest"`
}
