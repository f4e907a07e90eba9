package indicator

import "github.com/altf4-dev/strategist/models"

const (
	volumeAvgPeriod   = 20
	volumeTrendWindow = 5
)

// VolumeMetrics summarizes recent volume: the latest value, its ratio to
// the 20-sample average, and a trend classification comparing the most
// recent 5-sample average against the preceding 5-sample average, with the
// increasing/decreasing cutoffs taken from the config.
func VolumeMetrics(volumes []float64, cfg *models.Config) (*models.VolumeMetrics, error) {
	if len(volumes) < volumeAvgPeriod {
		return nil, insufficientData("volume", volumeAvgPeriod, len(volumes))
	}

	current := volumes[len(volumes)-1]

	var sum float64
	for _, v := range volumes[len(volumes)-volumeAvgPeriod:] {
		sum += v
	}
	average := sum / float64(volumeAvgPeriod)

	ratio := 0.0
	if average > 0 {
		ratio = current / average
	}

	recent := mean(volumes[len(volumes)-volumeTrendWindow:])
	previous := mean(volumes[len(volumes)-2*volumeTrendWindow : len(volumes)-volumeTrendWindow])

	trend := models.VolumeStable
	if previous > 0 {
		switch trendRatio := recent / previous; {
		case trendRatio > cfg.VolumeIncreasingRatio:
			trend = models.VolumeIncreasing
		case trendRatio < cfg.VolumeDecreasingRatio:
			trend = models.VolumeDecreasing
		}
	}

	return &models.VolumeMetrics{
		Current: current,
		Average: average,
		Ratio:   ratio,
		Trend:   trend,
	}, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
