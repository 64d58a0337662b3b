package eventmodels

import "time"

// StraddleRecordDTO carries the canonical column names used by the exported
// dataset. The classifier is trained against these exact headers, so renames
// happen here and nowhere downstream.
type StraddleRecordDTO struct {
	Symbol           string  `csv:"Symbol"`
	EarningsDate     string  `csv:"Earnings_Date"`
	PriceChangeRatio float64 `csv:"Price_Change_Ratio"`
	CurrentPrice     float64 `csv:"Current_Price"`
	CallStrike       float64 `csv:"Call_Strike"`
	PutStrike        float64 `csv:"Put_Strike"`
	BuyDate          string  `csv:"Buy_Date"`
	SellDate         string  `csv:"Sell_Date"`
	BuyCallPrice     float64 `csv:"Buy_Call_Price"`
	BuyPutPrice      float64 `csv:"Buy_Put_Price"`
	CallVolume       int     `csv:"Call_Volume"`
	CallOpenInterest int     `csv:"Call_Open_Interest"`
	PutVolume        int     `csv:"Put_Volume"`
	PutOpenInterest  int     `csv:"Put_Open_Interest"`
	CallPriceChange  float64 `csv:"Call_Price_Change"`
	PutPriceChange   float64 `csv:"Put_Price_Change"`
	TotalGain        float64 `csv:"Total_Gain"`
	Gain             bool    `csv:"Gain"`
}

func (r *StraddleRecord) ToDTO() *StraddleRecordDTO {
	return &StraddleRecordDTO{
		Symbol:           r.Symbol.String(),
		EarningsDate:     r.EarningsDate.Format("2006-01-02"),
		PriceChangeRatio: r.PriceChangeRatio,
		CurrentPrice:     r.CurrentPrice,
		CallStrike:       r.CallStrike,
		PutStrike:        r.PutStrike,
		BuyDate:          r.EntryDate.Format("2006-01-02"),
		SellDate:         r.ExitDate.Format("2006-01-02"),
		BuyCallPrice:     r.BuyCallPrice,
		BuyPutPrice:      r.BuyPutPrice,
		CallVolume:       r.CallVolume,
		CallOpenInterest: r.CallOpenInterest,
		PutVolume:        r.PutVolume,
		PutOpenInterest:  r.PutOpenInterest,
		CallPriceChange:  r.CallPriceChangePct,
		PutPriceChange:   r.PutPriceChangePct,
		TotalGain:        r.TotalGainPct,
		Gain:             r.GainLabel,
	}
}

func (dto *StraddleRecordDTO) ToModel() (*StraddleRecord, error) {
	earningsDate, err := time.Parse("2006-01-02", dto.EarningsDate)
	if err != nil {
		return nil, err
	}

	buyDate, err := time.Parse("2006-01-02", dto.BuyDate)
	if err != nil {
		return nil, err
	}

	sellDate, err := time.Parse("2006-01-02", dto.SellDate)
	if err != nil {
		return nil, err
	}

	return &StraddleRecord{
		Symbol:             NewStockSymbol(dto.Symbol),
		EarningsDate:       earningsDate,
		EntryDate:          buyDate,
		ExitDate:           sellDate,
		PriceChangeRatio:   dto.PriceChangeRatio,
		CurrentPrice:       dto.CurrentPrice,
		CallStrike:         dto.CallStrike,
		PutStrike:          dto.PutStrike,
		BuyCallPrice:       dto.BuyCallPrice,
		BuyPutPrice:        dto.BuyPutPrice,
		CallVolume:         dto.CallVolume,
		CallOpenInterest:   dto.CallOpenInterest,
		PutVolume:          dto.PutVolume,
		PutOpenInterest:    dto.PutOpenInterest,
		CallPriceChangePct: dto.CallPriceChange,
		PutPriceChangePct:  dto.PutPriceChange,
		TotalGainPct:       dto.TotalGain,
		GainLabel:          dto.Gain,
	}, nil
}
