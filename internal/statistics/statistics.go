// Package statistics summarizes finished batches: interval estimates of the
// win fraction and sanity checks on the door draws.
package statistics

import (
	"errors"
	"fmt"
	"math"

	"montyhall/internal/game"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes the win fraction of one batch.
type Summary struct {
	Fraction    float64
	StdErr      float64
	Lower       float64
	Upper       float64
	Confidence  float64
	Theoretical float64
}

// Covers reports whether the theoretical fraction lies inside the interval.
func (s Summary) Covers() bool {
	return s.Lower <= s.Theoretical && s.Theoretical <= s.Upper
}

// Summarize computes the Wilson score interval for the batch's win fraction at
// the given confidence level.
func Summarize(r game.Result, confidence float64) (Summary, error) {
	if confidence <= 0 || confidence >= 1 {
		return Summary{}, fmt.Errorf("confidence %v outside (0, 1)", confidence)
	}
	p, err := r.WinFraction()
	if err != nil {
		return Summary{}, err
	}
	n := float64(r.Trials)
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)

	z2 := z * z
	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	return Summary{
		Fraction:    p,
		StdErr:      math.Sqrt(p * (1 - p) / n),
		Lower:       math.Max(0, center-half),
		Upper:       math.Min(1, center+half),
		Confidence:  confidence,
		Theoretical: r.Strategy.Expected(),
	}, nil
}

// UniformityPValue runs a chi-squared goodness-of-fit test of counts against
// the uniform distribution and returns the p-value.
func UniformityPValue(counts []int) (float64, error) {
	if len(counts) < 2 {
		return 0, errors.New("need at least two categories")
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, errors.New("no observations")
	}
	expected := float64(total) / float64(len(counts))
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	dist := distuv.ChiSquared{K: float64(len(counts) - 1)}
	return dist.Survival(chi2), nil
}

// WorkerSpread is the standard deviation of the per-worker win fractions.
func WorkerSpread(r game.Result) (float64, error) {
	if len(r.WorkerTrials) == 0 {
		return 0, errors.New("result has no worker partitions")
	}
	fractions := make(stats.Float64Data, 0, len(r.WorkerTrials))
	for i, n := range r.WorkerTrials {
		if n == 0 {
			continue
		}
		fractions = append(fractions, float64(r.WorkerWins[i])/float64(n))
	}
	return stats.StandardDeviation(fractions)
}
