package eventmodels

import (
	"fmt"
	"time"
)

type TradierExpirationsDTO struct {
	Expirations struct {
		Date []string `json:"date"`
	} `json:"expirations"`
}

func (dto *TradierExpirationsDTO) ToModel() ([]time.Time, error) {
	var expirations []time.Time
	for _, d := range dto.Expirations.Date {
		expiration, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("TradierExpirationsDTO: ToModel: failed to parse expiration %s: %w", d, err)
		}

		expirations = append(expirations, expiration)
	}

	return expirations, nil
}

type TradierOptionDTO struct {
	Symbol         string  `json:"symbol"`
	Strike         float64 `json:"strike"`
	Last           float64 `json:"last"`
	Bid            float64 `json:"bid"`
	Ask            float64 `json:"ask"`
	Volume         int     `json:"volume"`
	OpenInterest   int     `json:"open_interest"`
	OptionType     string  `json:"option_type"`
	ExpirationDate string  `json:"expiration_date"`
}

type TradierOptionChainDTO struct {
	Options struct {
		Option []TradierOptionDTO `json:"option"`
	} `json:"options"`
}

func (dto *TradierOptionChainDTO) ToSnapshot(symbol StockSymbol, asOf, expiration time.Time) *OptionChainSnapshot {
	snapshot := &OptionChainSnapshot{
		Symbol:     symbol,
		AsOf:       asOf,
		Expiration: expiration,
	}

	for _, o := range dto.Options.Option {
		quote := OptionQuote{
			Strike:       o.Strike,
			LastPrice:    o.Last,
			Ask:          o.Ask,
			Bid:          o.Bid,
			Volume:       o.Volume,
			OpenInterest: o.OpenInterest,
		}

		switch o.OptionType {
		case "call":
			snapshot.Calls = append(snapshot.Calls, quote)
		case "put":
			snapshot.Puts = append(snapshot.Puts, quote)
		}
	}

	return snapshot
}
