package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/altf4-dev/strategist/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEMA(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		period   int
		expected float64
	}{
		{
			name:   "seeds with first price and folds forward",
			prices: []float64{1, 2, 3},
			period: 2,
			// k = 2/3: 1 -> 5/3 -> 23/9
			expected: 23.0 / 9.0,
		},
		{
			name:     "constant series stays constant",
			prices:   []float64{50, 50, 50, 50, 50},
			period:   3,
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EMA(tt.prices, tt.period)
			if err != nil {
				t.Fatalf("EMA() error = %v", err)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("EMA() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEMADeterministic(t *testing.T) {
	prices := []float64{101.3, 99.8, 100.5, 102.2, 101.9, 103.4, 104.0, 103.1, 105.2, 104.8}

	first, err := EMA(prices, 5)
	if err != nil {
		t.Fatalf("EMA() error = %v", err)
	}
	second, err := EMA(prices, 5)
	if err != nil {
		t.Fatalf("EMA() error = %v", err)
	}
	if first != second {
		t.Errorf("EMA() not deterministic: %v vs %v", first, second)
	}
}

func TestEMAInsufficientData(t *testing.T) {
	_, err := EMA([]float64{1, 2, 3}, 5)
	if err == nil {
		t.Fatal("EMA() expected error, got nil")
	}

	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("EMA() error = %v, want InsufficientDataError", err)
	}
	if insufficient.Required != 5 || insufficient.Available != 3 {
		t.Errorf("InsufficientDataError = %d/%d, want 5/3",
			insufficient.Required, insufficient.Available)
	}
}

func TestRSI(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		period   int
		expected float64
	}{
		{
			name:     "all gains maps to 100",
			prices:   []float64{100, 101, 102, 103, 104, 105},
			period:   5,
			expected: 100,
		},
		{
			name:     "all losses maps to 0",
			prices:   []float64{105, 104, 103, 102, 101, 100},
			period:   5,
			expected: 0,
		},
		{
			name:     "flat series has no losses",
			prices:   []float64{100, 100, 100, 100, 100, 100},
			period:   5,
			expected: 100,
		},
		{
			name: "balanced gains and losses",
			// deltas: +2, -2, +2, -2 over period 4
			prices:   []float64{100, 102, 100, 102, 100},
			period:   4,
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RSI(tt.prices, tt.period)
			if err != nil {
				t.Fatalf("RSI() error = %v", err)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("RSI() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRSIBounds(t *testing.T) {
	prices := []float64{
		100, 103.2, 99.1, 104.5, 98.7, 105.9, 101.2, 97.4, 106.8, 102.3,
		96.5, 107.1, 103.8, 95.9, 108.4, 104.2,
	}

	rsi, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI() error = %v", err)
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI() = %v, want within [0,100]", rsi)
	}
}

func TestRSIInsufficientData(t *testing.T) {
	prices := make([]float64, 14)
	if _, err := RSI(prices, 14); err == nil {
		t.Error("RSI() with period samples expected error, got nil")
	}
}

func TestBollingerBands(t *testing.T) {
	t.Run("band ordering holds", func(t *testing.T) {
		prices := []float64{
			100, 102, 98, 104, 96, 106, 101, 97, 103, 99,
			105, 95, 107, 100, 98, 104, 102, 96, 101, 103,
		}
		upper, middle, lower, err := BollingerBands(prices, 20, 2)
		if err != nil {
			t.Fatalf("BollingerBands() error = %v", err)
		}
		if !(lower <= middle && middle <= upper) {
			t.Errorf("band ordering violated: %v / %v / %v", upper, middle, lower)
		}
	})

	t.Run("constant series collapses bands", func(t *testing.T) {
		prices := make([]float64, 20)
		for i := range prices {
			prices[i] = 42
		}
		upper, middle, lower, err := BollingerBands(prices, 20, 2)
		if err != nil {
			t.Fatalf("BollingerBands() error = %v", err)
		}
		if !almostEqual(upper, 42) || !almostEqual(middle, 42) || !almostEqual(lower, 42) {
			t.Errorf("bands = %v / %v / %v, want all 42", upper, middle, lower)
		}
	})

	t.Run("insufficient data", func(t *testing.T) {
		if _, _, _, err := BollingerBands(make([]float64, 19), 20, 2); err == nil {
			t.Error("BollingerBands() expected error, got nil")
		}
	})
}

func TestVolumeMetrics(t *testing.T) {
	cfg := models.DefaultConfig()

	tests := []struct {
		name          string
		volumes       []float64
		expectedTrend models.VolumeTrend
		expectedRatio float64
	}{
		{
			name:          "flat volume is stable",
			volumes:       repeat(1000, 20),
			expectedTrend: models.VolumeStable,
			expectedRatio: 1.0,
		},
		{
			name:          "recent surge is increasing",
			volumes:       append(repeat(100, 15), 200, 200, 200, 200, 200),
			expectedTrend: models.VolumeIncreasing,
			expectedRatio: 1.6, // 200 / ((15*100+5*200)/20)
		},
		{
			name:          "recent drought is decreasing",
			volumes:       append(repeat(200, 15), 100, 100, 100, 100, 100),
			expectedTrend: models.VolumeDecreasing,
			expectedRatio: 100.0 / 175.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VolumeMetrics(tt.volumes, cfg)
			if err != nil {
				t.Fatalf("VolumeMetrics() error = %v", err)
			}
			if got.Trend != tt.expectedTrend {
				t.Errorf("Trend = %v, want %v", got.Trend, tt.expectedTrend)
			}
			if !almostEqual(got.Ratio, tt.expectedRatio) {
				t.Errorf("Ratio = %v, want %v", got.Ratio, tt.expectedRatio)
			}
		})
	}

	t.Run("trend cutoffs come from the config", func(t *testing.T) {
		strict := models.DefaultConfig()
		strict.VolumeIncreasingRatio = 2.5

		// A 2x surge classifies as increasing under the defaults but not
		// under the stricter cutoff.
		surge := append(repeat(100, 15), 200, 200, 200, 200, 200)
		got, err := VolumeMetrics(surge, strict)
		if err != nil {
			t.Fatalf("VolumeMetrics() error = %v", err)
		}
		if got.Trend != models.VolumeStable {
			t.Errorf("Trend = %v, want stable under raised cutoff", got.Trend)
		}
	})

	t.Run("insufficient data", func(t *testing.T) {
		if _, err := VolumeMetrics(make([]float64, 19), cfg); err == nil {
			t.Error("VolumeMetrics() expected error, got nil")
		}
	})
}

func TestAllIndicators(t *testing.T) {
	cfg := models.DefaultConfig()

	t.Run("requires 21 samples", func(t *testing.T) {
		if _, err := AllIndicators(make([]float64, 20), cfg); err == nil {
			t.Error("AllIndicators() expected error, got nil")
		}
	})

	t.Run("uptrend puts fast EMA above slow EMA", func(t *testing.T) {
		prices := repeat(100, 20)
		for i := 1; i <= 10; i++ {
			prices = append(prices, 100+float64(i)*3)
		}

		ind, err := AllIndicators(prices, cfg)
		if err != nil {
			t.Fatalf("AllIndicators() error = %v", err)
		}
		if ind.EMAFast <= ind.EMASlow {
			t.Errorf("EMAFast = %v not above EMASlow = %v on rising series",
				ind.EMAFast, ind.EMASlow)
		}
		if ind.RSI < 0 || ind.RSI > 100 {
			t.Errorf("RSI = %v out of bounds", ind.RSI)
		}
		if !(ind.BBLower <= ind.BBMiddle && ind.BBMiddle <= ind.BBUpper) {
			t.Errorf("band ordering violated: %v / %v / %v",
				ind.BBUpper, ind.BBMiddle, ind.BBLower)
		}
	})
}

func repeat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
