package eventmodels

import "time"

// MoveEstimate is the average absolute close-to-close price change across the
// last RequiredMoveEstimateSampleSize earnings events before AsOf.
type MoveEstimate struct {
	Symbol           StockSymbol `json:"symbol"`
	AsOf             time.Time   `json:"as_of"`
	AverageAbsChange float64     `json:"average_abs_change"`
	SampleSize       int         `json:"sample_size"`
}

const RequiredMoveEstimateSampleSize = 4
