package eventmodels

type OratsQuoteDTO struct {
	Ticker           string  `json:"ticker"`
	TradeDate        string  `json:"tradeDate"`
	ExpirDate        string  `json:"expirDate"`
	Strike           float64 `json:"strike"`
	CallAskPrice     float64 `json:"callAskPrice"`
	CallBidPrice     float64 `json:"callBidPrice"`
	CallVolume       int     `json:"callVolume"`
	CallOpenInterest int     `json:"callOpenInterest"`
	PutAskPrice      float64 `json:"putAskPrice"`
	PutBidPrice      float64 `json:"putBidPrice"`
	PutVolume        int     `json:"putVolume"`
	PutOpenInterest  int     `json:"putOpenInterest"`
}

type OratsQuotesResponseDTO struct {
	Data []OratsQuoteDTO `json:"data"`
}
