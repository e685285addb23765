package ga

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds per-generation statistics
type GenerationStats struct {
	Generation int     `json:"generation"` // 1-based
	Remaining  int     `json:"remaining"`  // generations left after this one
	Size       int     `json:"size"`
	Average    float64 `json:"average"` // rounded to two decimals
	Max        float64 `json:"max"`
	Min        float64 `json:"min"`
	StdDev     float64 `json:"std_dev"`
	Flips      int     `json:"flips"`
}

// Summarize computes statistics over a population
func Summarize(pop *Population) GenerationStats {
	fits := pop.Fitnesses()
	if len(fits) == 0 {
		return GenerationStats{}
	}

	s := GenerationStats{
		Size:    len(fits),
		Average: Round2(stat.Mean(fits, nil)),
		Max:     floats.Max(fits),
		Min:     floats.Min(fits),
	}
	if len(fits) > 1 {
		s.StdDev = stat.PopStdDev(fits, nil)
	}
	return s
}

// Round2 rounds the exact value of x to two decimals, ties to even
func Round2(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return r
}
