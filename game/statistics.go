package game

import (
	"math"
	"slices"
)

// Number is any floating point type the statistics helpers work on.
type Number interface {
	~float32 | ~float64
}

// Sum ...
func Sum[T Number](data []T) (result float64) {
	for _, v := range data {
		result += float64(v)
	}
	return result
}

// Mean ...
func Mean[T Number](data []T) float64 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float64(len(data))
}

// Median returns the middle value of data. The slice passed is not modified.
func Median[T Number](data []T) float64 {
	count := len(data)
	if count == 0 {
		return 0
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if count%2 != 0 {
		return float64(sorted[count/2])
	}
	return (float64(sorted[count/2-1]) + float64(sorted[count/2])) * 0.5
}

// Variance ...
func Variance[T Number](data []T) (variance float64) {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	for _, v := range data {
		variance += math.Pow(float64(v)-mean, 2)
	}
	return variance / float64(len(data))
}

// StandardDeviation ...
func StandardDeviation[T Number](data []T) float64 {
	return math.Sqrt(Variance(data))
}

// Outliers returns the amount of values outside 1.5 interquartile ranges of the lower and upper quartile.
func Outliers[T Number](data []T) int {
	if len(data) < 4 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	half := (len(sorted) + 1) / 2
	q1, q3 := Median(sorted[:half]), Median(sorted[len(sorted)-half:])
	iqr := math.Abs(q3 - q1)
	low, high := q1-1.5*iqr, q3+1.5*iqr

	var n int
	for _, v := range sorted {
		if f := float64(v); f < low || f > high {
			n++
		}
	}
	return n
}
