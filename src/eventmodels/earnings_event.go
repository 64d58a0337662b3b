package eventmodels

import "time"

type EarningsEvent struct {
	Symbol           StockSymbol `json:"symbol"`
	AnnouncementDate time.Time   `json:"announcement_date"`
}
