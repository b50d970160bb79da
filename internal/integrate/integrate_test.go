package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalPDF(x float64) float64 {
	return (1 / math.Sqrt(2*math.Pi)) * math.Exp(-0.5*x*x)
}

func TestNewIntegrator(t *testing.T) {
	t.Run("rejects odd segment counts", func(t *testing.T) {
		_, err := NewIntegrator(7, 0.0001)
		require.ErrorIs(t, err, ErrOddSegments)
	})

	t.Run("accepts even segment counts", func(t *testing.T) {
		_, err := NewIntegrator(20, 0.0001)
		require.NoError(t, err)
	})
}

func TestIntegrate(t *testing.T) {
	integrator, err := NewIntegrator(20, 0.0001)
	require.NoError(t, err)

	// Simpson's rule is exact for polynomials up to degree three.
	result := integrator.Integrate(func(x float64) float64 { return x * x }, 0, 3)
	assert.InDelta(t, 9.0, result, 1e-9)

	result = integrator.Integrate(func(x float64) float64 { return x * x * x }, 0, 2)
	assert.InDelta(t, 4.0, result, 1e-9)
}

func TestIntegrateMinusInfinityTo(t *testing.T) {
	integrator, err := NewIntegrator(20, 0.0001)
	require.NoError(t, err)

	tests := []struct {
		upper float64
		want  float64
	}{
		{2.5, 0.9938},
		{0.2, 0.5793},
		{-1.1, 0.1357},
	}
	for _, tt := range tests {
		result := integrator.IntegrateMinusInfinityTo(normalPDF, tt.upper)
		assert.InDelta(t, tt.want, result, 1e-4, "upper bound %g", tt.upper)
	}
}

func TestIntegrate_NonFiniteIntegrand(t *testing.T) {
	integrator, err := NewIntegrator(20, 0.0001)
	require.NoError(t, err)

	result := integrator.Integrate(func(x float64) float64 { return math.NaN() }, 0, 1)
	assert.True(t, math.IsNaN(result))

	result = integrator.Integrate(func(x float64) float64 { return math.Inf(1) }, 0, 1)
	assert.True(t, math.IsInf(result, 1))
}

func TestDerivative(t *testing.T) {
	df := Derivative(func(x float64) float64 { return x * x }, 1e-7)
	assert.InDelta(t, 6.0, df(3), 1e-5)
}

func TestNewtonRaphson(t *testing.T) {
	root := NewtonRaphson(func(x float64) float64 { return x*x - 4 }, 3, 1e-10)
	assert.InDelta(t, 2.0, root, 1e-7)
}

func TestApproximateInverse(t *testing.T) {
	integrator, err := NewIntegrator(20, 1e-6)
	require.NoError(t, err)
	cdf := func(x float64) float64 {
		return integrator.IntegrateMinusInfinityTo(normalPDF, x)
	}

	assert.InDelta(t, 0.0, ApproximateInverse(cdf, 0.5), 1e-5)
	assert.InDelta(t, 1.6449, ApproximateInverse(cdf, 0.95), 1e-3)
}
