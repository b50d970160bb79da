// Package chisq implements the chi-squared test for normality used by the
// later PSP exercises.
package chisq

import (
	"errors"
	"math"

	"pspkit/internal/integrate"
	"pspkit/internal/stats"
)

var (
	// ErrTooFewItems is returned when fewer than 20 data points are given.
	ErrTooFewItems = errors.New("chisq: fewer than 20 items in data set")
	// ErrBadItemCount is returned when the item count is not an even
	// multiple of 5.
	ErrBadItemCount = errors.New("chisq: number of items is not an even multiple of 5")
)

// SegmentRange is a possibly unbounded inclusive range on the real line.
// A nil bound stands for the corresponding infinity.
type SegmentRange struct {
	Lower *float64
	Upper *float64
}

// Contains reports whether v falls within the range.
func (r SegmentRange) Contains(v float64) bool {
	if r.Lower != nil && v < *r.Lower {
		return false
	}
	if r.Upper != nil && v > *r.Upper {
		return false
	}
	return true
}

// Result holds the outcome of a chi-squared test.
type Result struct {
	// Q is the chi-squared sum.
	Q float64
	// P is the probability that the data is NOT normally distributed.
	P float64
}

// Test performs the chi-squared normality test on the given data.
func Test(data []float64) (Result, error) {
	if len(data) < 20 {
		return Result{}, ErrTooFewItems
	}
	if len(data)%5 != 0 || len(data)%2 != 0 {
		return Result{}, ErrBadItemCount
	}

	normalized, err := normalize(data)
	if err != nil {
		return Result{}, err
	}
	segments := segmentCount(len(data))
	q, err := chiSquared(normalized, segments)
	if err != nil {
		return Result{}, err
	}
	p, err := pValue(q, segments)
	if err != nil {
		return Result{}, err
	}
	return Result{Q: q, P: p}, nil
}

// normalize maps the data to zero mean and unit standard deviation.
func normalize(data []float64) ([]float64, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	dev, err := stats.StdDev(data)
	if err != nil {
		return nil, err
	}
	results := make([]float64, len(data))
	for i, v := range data {
		results[i] = (v - mean) / dev
	}
	return results, nil
}

// segmentCount returns the number of equal-probability segments the normal
// distribution is divided into for n items.
func segmentCount(n int) int {
	return int(5 * math.Ceil(math.Sqrt(float64(n))/5))
}

// normalBuckets divides the standard normal distribution into the given
// number of equal-probability segment ranges, in ascending order.
func normalBuckets(segments int) ([]SegmentRange, error) {
	integrator, err := integrate.NewIntegrator(20, 1e-10)
	if err != nil {
		return nil, err
	}
	cdf := func(x float64) float64 {
		return integrator.IntegrateMinusInfinityTo(stats.NormalPDF, x)
	}

	probability := 1 / float64(segments)
	ranges := make([]SegmentRange, 0, segments)
	var previous *float64
	for i := 1; i < segments; i++ {
		bound := integrate.ApproximateInverse(cdf, float64(i)*probability)
		ranges = append(ranges, SegmentRange{Lower: previous, Upper: &bound})
		previous = &bound
	}
	ranges = append(ranges, SegmentRange{Lower: previous})
	return ranges, nil
}

// chiSquared buckets the normalized data and sums the squared deviations
// from the expected per-bucket count.
func chiSquared(normalized []float64, segments int) (float64, error) {
	ranges, err := normalBuckets(segments)
	if err != nil {
		return 0, err
	}
	counts := make([]int, len(ranges))
	for _, v := range normalized {
		for i, r := range ranges {
			if r.Contains(v) {
				counts[i]++
				break
			}
		}
	}

	expected := float64(len(normalized)) / float64(segments)
	q := 0.0
	for _, c := range counts {
		d := expected - float64(c)
		q += d * d / expected
	}
	return q, nil
}

// pValue returns the probability that the data is not normally distributed.
func pValue(q float64, segments int) (float64, error) {
	integrator, err := integrate.NewIntegrator(20, 1e-10)
	if err != nil {
		return 0, err
	}
	tdist := stats.TDistribution(float64(segments - 1))
	return integrator.IntegrateMinusInfinityTo(tdist, q), nil
}
