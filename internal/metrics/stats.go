package metrics

import "math"

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance computes the population variance of a float64 slice.
// Returns 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sumSquaredDeviations(values, Mean(values)) / float64(len(values))
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Round4 rounds v to four decimal places. NaN and infinities pass through.
func Round4(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*10000) / 10000
}

func sumSquaredDeviations(values []float64, center float64) float64 {
	sumSq := 0.0
	for _, v := range values {
		d := v - center
		sumSq += d * d
	}
	return sumSq
}

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}
