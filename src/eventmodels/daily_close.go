package eventmodels

import "time"

type DailyClose struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}
