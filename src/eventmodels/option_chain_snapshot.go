package eventmodels

import "time"

// OptionChainSnapshot is a read-only, point-in-time view of the chain for a
// single underlying and expiration.
type OptionChainSnapshot struct {
	Symbol     StockSymbol   `json:"symbol"`
	AsOf       time.Time     `json:"as_of"`
	Expiration time.Time     `json:"expiration"`
	Calls      []OptionQuote `json:"calls"`
	Puts       []OptionQuote `json:"puts"`
}

func (s *OptionChainSnapshot) Side(optionType OptionType) []OptionQuote {
	if optionType == OptionTypePut {
		return s.Puts
	}

	return s.Calls
}
