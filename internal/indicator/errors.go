package indicator

import "fmt"

// InsufficientDataError reports that an indicator was asked to compute over
// fewer samples than its period requires. Indicators fail fast with it
// instead of returning degenerate values, so under-sized backtest windows
// surface immediately.
type InsufficientDataError struct {
	Indicator string
	Required  int
	Available int
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d samples, have %d",
		e.Indicator, e.Required, e.Available)
}

func insufficientData(indicator string, required, available int) error {
	return &InsufficientDataError{
		Indicator: indicator,
		Required:  required,
		Available: available,
	}
}
