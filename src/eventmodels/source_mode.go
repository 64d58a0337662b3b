package eventmodels

import "fmt"

// SourceMode selects which option data source backs contract selection: the
// live chain provider or the point-in-time historical provider.
type SourceMode string

const (
	SourceModeLive        SourceMode = "live"
	SourceModePointInTime SourceMode = "point_in_time"
)

func (m SourceMode) Validate() error {
	if m != SourceModeLive && m != SourceModePointInTime {
		return fmt.Errorf("SourceMode: Validate: invalid source mode: %s", m)
	}

	return nil
}
