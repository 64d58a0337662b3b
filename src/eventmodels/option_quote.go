package eventmodels

type OptionQuote struct {
	Strike       float64 `json:"strike"`
	LastPrice    float64 `json:"last_price"`
	Ask          float64 `json:"ask"`
	Bid          float64 `json:"bid"`
	Volume       int     `json:"volume"`
	OpenInterest int     `json:"open_interest"`
}
