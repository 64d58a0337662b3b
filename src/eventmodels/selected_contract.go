package eventmodels

import "time"

type SelectedContract struct {
	Symbol     StockSymbol `json:"symbol"`
	Expiration time.Time   `json:"expiration"`
	Strike     float64     `json:"strike"`
	OptionType OptionType  `json:"option_type"`
}
