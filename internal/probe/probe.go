// Package probe implements PRoxy-Based Estimation (PROBE) of program size
// and development time from historical project data.
//
// Estimation methods are tried in order of desirability; the first method
// whose preconditions hold against the historical data is used.
package probe

import (
	"errors"
	"fmt"

	"pspkit/internal/fileio"
	"pspkit/internal/stats"
)

// ErrNoMethod is returned when no estimation method's preconditions hold.
var ErrNoMethod = errors.New("probe: no estimation method applies to the historical data")

// CSV column names for historical data files.
const (
	ColPlannedSize = "Planned A+M Size"
	ColProxySize   = "Proxy Size Estimate"
	ColActualSize  = "Actual A+M Size"
	ColPlannedTime = "Planned Time"
	ColActualTime  = "Actual Time"
)

// HistoricalData holds per-project estimation history. Slices may have
// different lengths; methods trim pairs to equal length before regressing.
type HistoricalData struct {
	PlannedSizes []float64
	ProxySizes   []float64
	ActualSizes  []float64
	PlannedTimes []float64
	ActualTimes  []float64
}

// LoadCSV reads historical data from a CSV file with the standard PROBE
// column names. Blank cells are skipped.
func LoadCSV(path string) (*HistoricalData, error) {
	data, err := fileio.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	h := &HistoricalData{}
	for col, dst := range map[string]*[]float64{
		ColPlannedSize: &h.PlannedSizes,
		ColProxySize:   &h.ProxySizes,
		ColActualSize:  &h.ActualSizes,
		ColPlannedTime: &h.PlannedTimes,
		ColActualTime:  &h.ActualTimes,
	} {
		values, err := data.Column(col)
		if err != nil {
			return nil, fmt.Errorf("probe: %w", err)
		}
		*dst = values
	}
	return h, nil
}

// TrimToEqualLength trims the longer slice from the front so both slices
// have the same length.
func TrimToEqualLength(xs, ys []float64) ([]float64, []float64) {
	switch {
	case len(xs) > len(ys):
		return xs[len(xs)-len(ys):], ys
	case len(ys) > len(xs):
		return xs, ys[len(ys)-len(xs):]
	}
	return xs, ys
}

// Interval is a prediction interval around a projected value.
type Interval struct {
	// Range is the interval half-width; HasRange is false for methods
	// that bound the interval by historical productivity instead.
	Range    float64
	HasRange bool
	UPI      float64
	LPI      float64
	Percent  string
}

type intervalKind int

const (
	intervalNone intervalKind = iota
	intervalRange
	intervalProductivity
)

// Method is one PROBE estimation method bound to historical data.
type Method struct {
	name     string
	xs, ys   []float64
	ratio    bool // regression is a ratio of sums rather than least squares
	interval intervalKind
	hist     *HistoricalData
}

// Name returns the method's PROBE designation (A, B, C, C1, ...).
func (m *Method) Name() string { return m.name }

// Regression returns the method's regression parameters.
func (m *Method) Regression() (stats.LinearRegression, error) {
	if m.ratio {
		sumX, sumY := 0.0, 0.0
		for _, x := range m.xs {
			sumX += x
		}
		for _, y := range m.ys {
			sumY += y
		}
		if sumY == 0 {
			return stats.LinearRegression{}, errors.New("probe: ratio method divides by zero sum")
		}
		return stats.LinearRegression{Beta0: 0, Beta1: sumX / sumY}, nil
	}

	b0, err := stats.Beta0(m.xs, m.ys)
	if err != nil {
		return stats.LinearRegression{}, err
	}
	b1, err := stats.Beta1(m.xs, m.ys)
	if err != nil {
		return stats.LinearRegression{}, err
	}
	return stats.LinearRegression{Beta0: b0, Beta1: b1}, nil
}

// RSquared returns the squared correlation between the method's data sets.
func (m *Method) RSquared() (float64, error) {
	r, err := stats.Correlation(m.xs, m.ys)
	if err != nil {
		return 0, err
	}
	return r * r, nil
}

// Significance returns the probability that the correlation between the
// method's data sets occurred by chance.
func (m *Method) Significance() (float64, error) {
	return stats.Significance(m.xs, m.ys)
}

// Interval returns the prediction interval for the given estimate, or nil
// when the method provides none.
func (m *Method) Interval(estimate float64) (*Interval, error) {
	switch m.interval {
	case intervalRange:
		return m.rangeInterval(estimate)
	case intervalProductivity:
		return m.productivityInterval(estimate)
	}
	return nil, nil
}

// rangeInterval computes a 70% prediction interval around the regression.
func (m *Method) rangeInterval(estimate float64) (*Interval, error) {
	width, err := stats.PredictionRange(estimate, 0.85, m.xs, m.ys)
	if err != nil {
		return nil, err
	}
	regression, err := m.Regression()
	if err != nil {
		return nil, err
	}
	projected := regression.Estimate(estimate)
	return &Interval{
		Range:    width,
		HasRange: true,
		UPI:      projected + width,
		LPI:      projected - width,
		Percent:  "70%",
	}, nil
}

// productivityInterval bounds the projection by the best and worst
// historical productivity in LOC per hour.
func (m *Method) productivityInterval(estimate float64) (*Interval, error) {
	sizes, times := TrimToEqualLength(m.hist.ActualSizes, m.hist.ActualTimes)
	if len(sizes) == 0 {
		return nil, nil
	}
	minProd, maxProd := 0.0, 0.0
	for i := range sizes {
		if times[i] == 0 {
			continue
		}
		p := sizes[i] / times[i] * 60
		if minProd == 0 || p < minProd {
			minProd = p
		}
		if p > maxProd {
			maxProd = p
		}
	}
	if minProd == 0 {
		return nil, nil
	}

	regression, err := m.Regression()
	if err != nil {
		return nil, err
	}
	projected := regression.Estimate(estimate)
	return &Interval{
		UPI:     projected / minProd * 60,
		LPI:     projected / maxProd * 60,
		Percent: "N/A",
	}, nil
}

// Estimator selects estimation methods for historical data.
type Estimator struct {
	hist *HistoricalData
}

// NewEstimator returns an estimator over the given historical data.
func NewEstimator(hist *HistoricalData) *Estimator {
	return &Estimator{hist: hist}
}

// SizeMethod returns the most desirable size estimation method whose
// preconditions hold for the given proxy estimate.
func (e *Estimator) SizeMethod(proxy float64) (*Method, error) {
	candidates := []*Method{
		e.regressionMethod("A", e.hist.ProxySizes, e.hist.ActualSizes, intervalRange),
		e.regressionMethod("B", e.hist.PlannedSizes, e.hist.ActualSizes, intervalRange),
		e.ratioMethod("C", e.hist.ActualSizes, e.hist.PlannedSizes, intervalNone),
	}
	for _, m := range candidates {
		ok, err := e.sizePreconditions(m, proxy)
		if err != nil {
			return nil, err
		}
		if ok {
			return m, nil
		}
	}
	return nil, ErrNoMethod
}

// TimeMethod returns the most desirable time estimation method whose
// preconditions hold for the given proxy estimate.
func (e *Estimator) TimeMethod(proxy float64) (*Method, error) {
	candidates := []*Method{
		e.regressionMethod("A", e.hist.ProxySizes, e.hist.ActualTimes, intervalRange),
		e.regressionMethod("B", e.hist.PlannedSizes, e.hist.ActualTimes, intervalRange),
		e.ratioMethod("C1", e.hist.ActualTimes, e.hist.ProxySizes, intervalProductivity),
		e.ratioMethod("C2", e.hist.ActualTimes, e.hist.PlannedSizes, intervalProductivity),
		e.ratioMethod("C3", e.hist.ActualTimes, e.hist.ActualSizes, intervalProductivity),
	}
	for _, m := range candidates {
		ok, err := e.timePreconditions(m, proxy)
		if err != nil {
			return nil, err
		}
		if ok {
			return m, nil
		}
	}
	return nil, ErrNoMethod
}

func (e *Estimator) regressionMethod(name string, xs, ys []float64, kind intervalKind) *Method {
	xs, ys = TrimToEqualLength(xs, ys)
	return &Method{name: name, xs: xs, ys: ys, interval: kind, hist: e.hist}
}

func (e *Estimator) ratioMethod(name string, xs, ys []float64, kind intervalKind) *Method {
	xs, ys = TrimToEqualLength(xs, ys)
	return &Method{name: name, xs: xs, ys: ys, ratio: true, interval: kind, hist: e.hist}
}

// sizePreconditions checks whether a size method may be used.
func (e *Estimator) sizePreconditions(m *Method, proxy float64) (bool, error) {
	if m.ratio {
		// Method C only needs matching planned and actual history.
		return len(e.hist.ActualSizes) > 0 &&
			len(e.hist.PlannedSizes) == len(e.hist.ActualSizes), nil
	}
	return e.regressionPreconditions(m, proxy, func(regression stats.LinearRegression) bool {
		return regression.Beta1 >= 0.5 && regression.Beta1 <= 2.0
	})
}

// timePreconditions checks whether a time method may be used.
func (e *Estimator) timePreconditions(m *Method, proxy float64) (bool, error) {
	if m.ratio {
		return len(m.xs) > 0 && len(m.ys) > 0, nil
	}
	return e.regressionPreconditions(m, proxy, func(regression stats.LinearRegression) bool {
		// Beta1 must be within half of historical productivity.
		sumSize, sumTime := 0.0, 0.0
		for _, x := range m.xs {
			sumSize += x
		}
		for _, y := range m.ys {
			sumTime += y
		}
		if sumSize == 0 {
			return false
		}
		productivity := sumTime / sumSize
		spread := 0.5 * productivity
		return regression.Beta1 >= productivity-spread && regression.Beta1 <= productivity+spread
	})
}

// regressionPreconditions applies the checks shared by regression methods:
// enough data, a small intercept, an in-bounds slope, strong correlation,
// and significant correlation.
func (e *Estimator) regressionPreconditions(m *Method, proxy float64, beta1OK func(stats.LinearRegression) bool) (bool, error) {
	if len(m.xs) < 3 {
		return false, nil
	}
	regression, err := m.Regression()
	if err != nil {
		return false, err
	}
	if regression.Beta0 > 0.25*regression.Estimate(proxy) {
		return false, nil
	}
	if !beta1OK(regression) {
		return false, nil
	}
	r2, err := m.RSquared()
	if err != nil {
		return false, err
	}
	if r2 < 0.5 {
		return false, nil
	}
	sig, err := m.Significance()
	if err != nil {
		return false, err
	}
	return sig <= 0.05, nil
}
