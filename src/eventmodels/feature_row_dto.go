package eventmodels

type FeatureRowDTO struct {
	Symbol           string   `csv:"Symbol"`
	EarningsDate     string   `csv:"Earnings_Date"`
	PriceChangeRatio float64  `csv:"Price_Change_Ratio"`
	CurrentPrice     float64  `csv:"Current_Price"`
	CallStrike       float64  `csv:"Call_Strike"`
	PutStrike        float64  `csv:"Put_Strike"`
	ExpirationDate   string   `csv:"Expiration_Date"`
	BuyCallPrice     float64  `csv:"Buy_Call_Price"`
	BuyPutPrice      float64  `csv:"Buy_Put_Price"`
	CallVolume       int      `csv:"Call_Volume"`
	CallOpenInterest int      `csv:"Call_Open_Interest"`
	PutVolume        int      `csv:"Put_Volume"`
	PutOpenInterest  int      `csv:"Put_Open_Interest"`
	CallPutRatio     *float64 `csv:"Call_Put_Ratio"`
}

func (r *FeatureRow) ToDTO() *FeatureRowDTO {
	return &FeatureRowDTO{
		Symbol:           r.Symbol.String(),
		EarningsDate:     r.EarningsDate.Format("2006-01-02"),
		PriceChangeRatio: r.PriceChangeRatio,
		CurrentPrice:     r.CurrentPrice,
		CallStrike:       r.CallStrike,
		PutStrike:        r.PutStrike,
		ExpirationDate:   r.Expiration.Format("2006-01-02"),
		BuyCallPrice:     r.BuyCallPrice,
		BuyPutPrice:      r.BuyPutPrice,
		CallVolume:       r.CallVolume,
		CallOpenInterest: r.CallOpenInterest,
		PutVolume:        r.PutVolume,
		PutOpenInterest:  r.PutOpenInterest,
		CallPutRatio:     r.CallPutRatio,
	}
}
