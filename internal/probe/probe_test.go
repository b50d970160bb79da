package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goodHistory is near-linear so the regression methods qualify.
func goodHistory() *HistoricalData {
	return &HistoricalData{
		PlannedSizes: []float64{105, 210, 310, 415, 505},
		ProxySizes:   []float64{100, 200, 300, 400, 500},
		ActualSizes:  []float64{110, 220, 305, 420, 510},
		PlannedTimes: []float64{60, 125, 180, 245, 300},
		ActualTimes:  []float64{62, 118, 183, 239, 298},
	}
}

// thinHistory has too few points for any regression method.
func thinHistory() *HistoricalData {
	return &HistoricalData{
		PlannedSizes: []float64{100, 200},
		ProxySizes:   []float64{90, 180},
		ActualSizes:  []float64{120, 240},
		ActualTimes:  []float64{60, 120},
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	contents := "Planned A+M Size,Proxy Size Estimate,Actual A+M Size,Planned Time,Actual Time\n" +
		"100,90,120,60,70\n" +
		"200,180,240,120,110\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	hist, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 200}, hist.PlannedSizes)
	assert.Equal(t, []float64{90, 180}, hist.ProxySizes)
	assert.Equal(t, []float64{120, 240}, hist.ActualSizes)
	assert.Equal(t, []float64{60, 120}, hist.PlannedTimes)
	assert.Equal(t, []float64{70, 110}, hist.ActualTimes)
}

func TestTrimToEqualLength(t *testing.T) {
	t.Run("trims the front of the longer set", func(t *testing.T) {
		xs, ys := TrimToEqualLength([]float64{1, 2, 3, 4}, []float64{5, 6})
		assert.Equal(t, []float64{3, 4}, xs)
		assert.Equal(t, []float64{5, 6}, ys)

		xs, ys = TrimToEqualLength([]float64{1}, []float64{5, 6, 7})
		assert.Equal(t, []float64{1}, xs)
		assert.Equal(t, []float64{7}, ys)
	})

	t.Run("leaves equal sets alone", func(t *testing.T) {
		xs, ys := TrimToEqualLength([]float64{1, 2}, []float64{3, 4})
		assert.Equal(t, []float64{1, 2}, xs)
		assert.Equal(t, []float64{3, 4}, ys)
	})
}

func TestSizeMethod_Regression(t *testing.T) {
	estimator := NewEstimator(goodHistory())

	method, err := estimator.SizeMethod(386)
	require.NoError(t, err)
	assert.Equal(t, "A", method.Name())

	regression, err := method.Regression()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, regression.Beta1, 1e-9)
	assert.InDelta(t, 13.0, regression.Beta0, 1e-9)
	assert.InDelta(t, 399.0, regression.Estimate(386), 1e-9)

	r2, err := method.RSquared()
	require.NoError(t, err)
	assert.Greater(t, r2, 0.5)

	sig, err := method.Significance()
	require.NoError(t, err)
	assert.LessOrEqual(t, sig, 0.05)
}

func TestSizeMethod_RegressionInterval(t *testing.T) {
	estimator := NewEstimator(goodHistory())

	method, err := estimator.SizeMethod(386)
	require.NoError(t, err)

	interval, err := method.Interval(386)
	require.NoError(t, err)
	require.NotNil(t, interval)

	assert.True(t, interval.HasRange)
	assert.Greater(t, interval.Range, 0.0)
	assert.Equal(t, "70%", interval.Percent)

	regression, err := method.Regression()
	require.NoError(t, err)
	projected := regression.Estimate(386)
	assert.InDelta(t, projected+interval.Range, interval.UPI, 1e-9)
	assert.InDelta(t, projected-interval.Range, interval.LPI, 1e-9)
}

func TestSizeMethod_FallsBackToRatio(t *testing.T) {
	estimator := NewEstimator(thinHistory())

	method, err := estimator.SizeMethod(100)
	require.NoError(t, err)
	assert.Equal(t, "C", method.Name())

	regression, err := method.Regression()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, regression.Beta0, 1e-9)
	assert.InDelta(t, 1.2, regression.Beta1, 1e-9)
	assert.InDelta(t, 120.0, regression.Estimate(100), 1e-9)

	interval, err := method.Interval(100)
	require.NoError(t, err)
	assert.Nil(t, interval)
}

func TestTimeMethod_Regression(t *testing.T) {
	estimator := NewEstimator(goodHistory())

	method, err := estimator.TimeMethod(386)
	require.NoError(t, err)
	assert.Equal(t, "A", method.Name())

	regression, err := method.Regression()
	require.NoError(t, err)
	// Slope stays within half of the historical productivity.
	assert.InDelta(t, 0.593, regression.Beta1, 1e-3)
}

func TestTimeMethod_FallsBackToProductivity(t *testing.T) {
	estimator := NewEstimator(thinHistory())

	method, err := estimator.TimeMethod(90)
	require.NoError(t, err)
	assert.Equal(t, "C1", method.Name())

	regression, err := method.Regression()
	require.NoError(t, err)
	// Sum of actual times over sum of proxy sizes.
	assert.InDelta(t, 180.0/270.0, regression.Beta1, 1e-9)

	interval, err := method.Interval(90)
	require.NoError(t, err)
	require.NotNil(t, interval)
	assert.False(t, interval.HasRange)
	assert.Equal(t, "N/A", interval.Percent)
	// Both historical projects ran at 120 LOC per hour.
	projected := regression.Estimate(90)
	assert.InDelta(t, projected/120*60, interval.UPI, 1e-9)
	assert.InDelta(t, projected/120*60, interval.LPI, 1e-9)
}

func TestEstimator_NoMethod(t *testing.T) {
	estimator := NewEstimator(&HistoricalData{})

	_, err := estimator.SizeMethod(100)
	require.ErrorIs(t, err, ErrNoMethod)
}
