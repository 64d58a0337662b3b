package eventmodels

import (
	"fmt"
	"time"
)

type OratsStrikeDTO struct {
	Ticker    string  `json:"ticker"`
	TradeDate string  `json:"tradeDate"`
	ExpirDate string  `json:"expirDate"`
	Strike    float64 `json:"strike"`
}

type OratsStrikesResponseDTO struct {
	Data []OratsStrikeDTO `json:"data"`
}

// PointInTimeStrike is one (expiration, strike) listing from the historical
// provider. Strikes are not separated by side in this schema.
type PointInTimeStrike struct {
	Expiration time.Time `json:"expiration"`
	Strike     float64   `json:"strike"`
}

func (dto *OratsStrikeDTO) ToModel() (*PointInTimeStrike, error) {
	expiration, err := time.Parse("2006-01-02", dto.ExpirDate)
	if err != nil {
		return nil, fmt.Errorf("OratsStrikeDTO: ToModel: failed to parse expirDate %s: %w", dto.ExpirDate, err)
	}

	return &PointInTimeStrike{
		Expiration: expiration,
		Strike:     dto.Strike,
	}, nil
}
