// Package stats implements the statistical calculations the PSP exercises
// are built on: descriptive statistics, linear regression, correlation and
// significance, and prediction ranges.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"pspkit/internal/integrate"
)

var (
	// ErrNoValues is returned when a calculation receives an empty data set.
	ErrNoValues = errors.New("stats: no values given")
	// ErrTooFewValues is returned when a calculation receives fewer values
	// than it needs.
	ErrTooFewValues = errors.New("stats: too few values given")
	// ErrSizeMismatch is returned when paired data sets differ in length.
	ErrSizeMismatch = errors.New("stats: data sets differ in length")
)

// Mean returns the average of the given values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w to mean", ErrNoValues)
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// StdDev returns the sample standard deviation of the given values.
// At least two values are required.
func StdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w to standard deviation", ErrTooFewValues)
	}
	avg, err := Mean(values)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, v := range values {
		total += (v - avg) * (v - avg)
	}
	return math.Sqrt(total / float64(len(values)-1)), nil
}

// Median returns the median of the given values.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w to median", ErrNoValues)
	}
	sorted := sortedCopy(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// UpperQuartile returns the third quartile (Q3). For odd-length data the
// middle element is excluded from the upper half.
func UpperQuartile(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w to upper quartile", ErrTooFewValues)
	}
	sorted := sortedCopy(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return Median(sorted[mid:])
	}
	return Median(sorted[mid+1:])
}

// LowerQuartile returns the first quartile (Q1).
func LowerQuartile(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w to lower quartile", ErrTooFewValues)
	}
	sorted := sortedCopy(values)
	return Median(sorted[:len(sorted)/2])
}

// InterquartileRange returns Q3 - Q1.
func InterquartileRange(values []float64) (float64, error) {
	upper, err := UpperQuartile(values)
	if err != nil {
		return 0, err
	}
	lower, err := LowerQuartile(values)
	if err != nil {
		return 0, err
	}
	return upper - lower, nil
}

// Outliers returns every value more than 1.5 interquartile ranges below Q1
// or above Q3.
func Outliers(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w to outliers", ErrTooFewValues)
	}
	q1, err := LowerQuartile(values)
	if err != nil {
		return nil, err
	}
	q3, err := UpperQuartile(values)
	if err != nil {
		return nil, err
	}
	iqr := q3 - q1
	lowerFence := q1 - 1.5*iqr
	upperFence := q3 + 1.5*iqr

	var results []float64
	for _, v := range values {
		if v < lowerFence || v > upperFence {
			results = append(results, v)
		}
	}
	return results, nil
}

// RemoveOutliers removes outlier rows from parallel data sets. When a value
// in any set is an outlier, the row at that index is dropped from every set.
// All sets must have the same length.
func RemoveOutliers(sets ...[]float64) ([][]float64, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	n := len(sets[0])
	for _, s := range sets {
		if len(s) != n {
			return nil, fmt.Errorf("remove outliers: %w", ErrSizeMismatch)
		}
	}

	drop := make(map[int]bool)
	for _, s := range sets {
		out, err := Outliers(s)
		if err != nil {
			return nil, err
		}
		for _, o := range out {
			for idx, v := range s {
				if v == o {
					drop[idx] = true
				}
			}
		}
	}

	results := make([][]float64, len(sets))
	for i, s := range sets {
		kept := make([]float64, 0, n-len(drop))
		for idx, v := range s {
			if !drop[idx] {
				kept = append(kept, v)
			}
		}
		results[i] = kept
	}
	return results, nil
}

// SizeRanges computes the log-normal size ranges characterizing the given
// data, ordered Very Small, Small, Medium, Large, Very Large.
func SizeRanges(values []float64) ([]float64, error) {
	logs := make([]float64, len(values))
	for i, v := range values {
		logs[i] = math.Log(v)
	}
	avg, err := Mean(logs)
	if err != nil {
		return nil, err
	}
	dev, err := StdDev(logs)
	if err != nil {
		return nil, err
	}
	bounds := []float64{avg - 2*dev, avg - dev, avg, avg + dev, avg + 2*dev}
	for i, b := range bounds {
		bounds[i] = math.Exp(b)
	}
	return bounds, nil
}

// Beta1 returns the slope parameter of the least-squares regression of y on x.
func Beta1(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("beta1: %w", ErrSizeMismatch)
	}
	xAvg, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	yAvg, err := Mean(ys)
	if err != nil {
		return 0, err
	}
	n := float64(len(xs))
	dividend := 0.0
	divisor := 0.0
	for i := range xs {
		dividend += xs[i] * ys[i]
		divisor += xs[i] * xs[i]
	}
	dividend -= n * xAvg * yAvg
	divisor -= n * xAvg * xAvg
	return dividend / divisor, nil
}

// Beta0 returns the intercept parameter of the least-squares regression of
// y on x.
func Beta0(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("beta0: %w", ErrSizeMismatch)
	}
	xAvg, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	yAvg, err := Mean(ys)
	if err != nil {
		return 0, err
	}
	b1, err := Beta1(xs, ys)
	if err != nil {
		return 0, err
	}
	return yAvg - b1*xAvg, nil
}

// Beta0Warnings returns warning messages for a beta0 value that is not
// near zero.
func Beta0Warnings(beta0 float64) []string {
	var warnings []string
	if beta0 > 1.0 {
		warnings = append(warnings, "Beta0 is not near 0")
	}
	return warnings
}

// Beta1Warnings returns warning messages for a beta1 value that is not
// near one.
func Beta1Warnings(beta1 float64) []string {
	var warnings []string
	if beta1 < 0.5 || beta1 > 2 {
		warnings = append(warnings, "Beta1 is not near 1")
	}
	return warnings
}

// NormalPDF returns the probability density of the standard normal
// distribution at x.
func NormalPDF(x float64) float64 {
	return (1 / math.Sqrt(2*math.Pi)) * math.Exp(-0.5*x*x)
}

// TDistribution returns the probability density function of the t
// distribution with the given degrees of freedom.
func TDistribution(degreesOfFreedom float64) func(float64) float64 {
	c := math.Gamma((degreesOfFreedom + 1) / 2)
	c /= math.Sqrt(degreesOfFreedom*math.Pi) * math.Gamma(degreesOfFreedom/2)
	return func(x float64) float64 {
		return c * math.Pow(1+(x*x/degreesOfFreedom), -((degreesOfFreedom+1)/2))
	}
}

// VarianceAroundRegression computes the variance of the y values around
// their regression on x.
func VarianceAroundRegression(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("variance around regression: %w", ErrSizeMismatch)
	}
	if len(xs) < 3 {
		return 0, fmt.Errorf("%w to variance around regression", ErrTooFewValues)
	}
	b0, err := Beta0(xs, ys)
	if err != nil {
		return 0, err
	}
	b1, err := Beta1(xs, ys)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := range xs {
		r := ys[i] - b0 - b1*xs[i]
		total += r * r
	}
	return total / float64(len(xs)-2), nil
}

// StdDevAroundRegression computes the standard deviation of the y values
// around their regression on x.
func StdDevAroundRegression(xs, ys []float64) (float64, error) {
	v, err := VarianceAroundRegression(xs, ys)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// PredictionRange computes the prediction interval half-width for the
// estimate xk at the given t-distribution alpha (e.g. 0.85 for a 70%
// interval).
func PredictionRange(xk, alpha float64, xs, ys []float64) (float64, error) {
	if len(xs) < 3 || len(ys) < 3 {
		return 0, fmt.Errorf("%w to compute prediction interval", ErrTooFewValues)
	}
	n := float64(len(xs))
	tdist := TDistribution(n - 2)
	integ, err := integrate.NewIntegrator(20, 1e-5)
	if err != nil {
		return 0, err
	}
	cdf := func(x float64) float64 {
		return integ.IntegrateMinusInfinityTo(tdist, x)
	}
	tValue := integrate.ApproximateInverse(cdf, alpha)

	dev, err := StdDevAroundRegression(xs, ys)
	if err != nil {
		return 0, err
	}
	xAvg, err := Mean(xs)
	if err != nil {
		return 0, err
	}

	sumSq := 0.0
	for _, x := range xs {
		sumSq += (x - xAvg) * (x - xAvg)
	}
	result := 1 + 1/n + (xk-xAvg)*(xk-xAvg)/sumSq
	return tValue * dev * math.Sqrt(result), nil
}

// Correlation returns the correlation coefficient between the two data sets.
func Correlation(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("correlation: %w", ErrSizeMismatch)
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w to correlation", ErrNoValues)
	}
	n := float64(len(xs))
	var sumXY, sumX, sumY, sumX2, sumY2 float64
	for i := range xs {
		sumXY += xs[i] * ys[i]
		sumX += xs[i]
		sumY += ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}
	numerator := n*sumXY - sumX*sumY
	denominator := (n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY)
	return numerator / math.Sqrt(denominator), nil
}

// TValue computes the t-distribution significance value for the correlation
// between the two data sets.
func TValue(xs, ys []float64) (float64, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return 0, fmt.Errorf("%w to t value", ErrNoValues)
	}
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("t value: %w", ErrSizeMismatch)
	}
	corr, err := Correlation(xs, ys)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(corr) {
		return 0, errors.New("stats: data sets with zero variance have no t value")
	}
	if 1-corr*corr <= 0 {
		return 0, errors.New("stats: perfectly correlated data sets have no t value")
	}
	return math.Abs(corr) * math.Sqrt(float64(len(xs))-2) / math.Sqrt(1-corr*corr), nil
}

// Significance returns the probability that the correlation between the two
// data sets occurred by chance.
func Significance(xs, ys []float64) (float64, error) {
	if len(xs) < 3 || len(ys) < 3 {
		return 0, fmt.Errorf("%w to significance", ErrTooFewValues)
	}
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("significance: %w", ErrSizeMismatch)
	}
	tVal, err := TValue(xs, ys)
	if err != nil {
		return 0, err
	}
	tdist := TDistribution(float64(len(xs)) - 2)
	integ, err := integrate.NewIntegrator(10, 1e-5)
	if err != nil {
		return 0, err
	}
	p := integ.IntegrateMinusInfinityTo(tdist, tVal)
	return 2 * (1 - p), nil
}

// LinearRegression projects values from beta parameters.
type LinearRegression struct {
	Beta0 float64
	Beta1 float64
}

// Estimate returns the projected value for the given proxy value.
func (r LinearRegression) Estimate(proxy float64) float64 {
	return r.Beta0 + r.Beta1*proxy
}

func sortedCopy(values []float64) []float64 {
	c := make([]float64, len(values))
	copy(c, values)
	sort.Float64s(c)
	return c
}
