package indicator

// RSI calculates the relative strength index over the most recent `period`
// price deltas. An average loss of exactly zero maps to RSI 100, so there
// is no divide-by-zero case.
func RSI(prices []float64, period int) (float64, error) {
	if len(prices) < period+1 {
		return 0, insufficientData("rsi", period+1, len(prices))
	}

	var gains, losses float64
	for i := len(prices) - period; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}

	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs)), nil
}
