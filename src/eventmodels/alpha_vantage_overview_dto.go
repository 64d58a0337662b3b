package eventmodels

// Alpha Vantage reports market capitalization in dollars, as a string.
type AlphaVantageOverviewDTO struct {
	Symbol               string `json:"Symbol"`
	MarketCapitalization string `json:"MarketCapitalization"`
}
