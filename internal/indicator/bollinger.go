package indicator

import "math"

// BollingerBands calculates the SMA of the trailing `period` prices and
// bands at ± stdDev population standard deviations around it.
func BollingerBands(prices []float64, period int, stdDev float64) (upper, middle, lower float64, err error) {
	if len(prices) < period {
		return 0, 0, 0, insufficientData("bollinger", period, len(prices))
	}

	window := prices[len(prices)-period:]

	var sum float64
	for _, p := range window {
		sum += p
	}
	middle = sum / float64(period)

	var variance float64
	for _, p := range window {
		variance += (p - middle) * (p - middle)
	}
	sd := math.Sqrt(variance / float64(period))

	upper = middle + sd*stdDev
	lower = middle - sd*stdDev

	return upper, middle, lower, nil
}
