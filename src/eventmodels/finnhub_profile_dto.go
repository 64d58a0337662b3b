package eventmodels

// Market capitalization is reported in millions.
type FinnhubProfileDTO struct {
	MarketCapitalization float64 `json:"marketCapitalization"`
	Name                 string  `json:"name"`
	Ticker               string  `json:"ticker"`
}
