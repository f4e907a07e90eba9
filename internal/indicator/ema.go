package indicator

// EMA calculates the exponential moving average of a price series. The
// seed is the first price, then each value folds in with weight
// k = 2/(period+1).
func EMA(prices []float64, period int) (float64, error) {
	if len(prices) < period {
		return 0, insufficientData("ema", period, len(prices))
	}

	k := 2.0 / float64(period+1)
	ema := prices[0]
	for _, price := range prices[1:] {
		ema = price*k + ema*(1-k)
	}

	return ema, nil
}
