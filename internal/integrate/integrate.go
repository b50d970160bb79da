// Package integrate provides numerical integration via Simpson's rule and
// function inversion via the Newton-Raphson method.
package integrate

import (
	"errors"
	"math"
)

// ErrOddSegments is returned when an Integrator is constructed with an odd
// segment count.
var ErrOddSegments = errors.New("integrate: Simpson's rule requires an even number of segments")

// Integrator approximates definite integrals using Simpson's rule, doubling
// the segment count until successive approximations converge.
type Integrator struct {
	segments int
	epsilon  float64
}

// NewIntegrator returns an integrator that starts with the given even
// number of segments and accepts results within epsilon of the previous
// refinement.
func NewIntegrator(segments int, epsilon float64) (*Integrator, error) {
	if segments%2 != 0 {
		return nil, ErrOddSegments
	}
	return &Integrator{segments: segments, epsilon: epsilon}, nil
}

// Integrate approximates the integral of f from lower to upper.
func (in *Integrator) Integrate(f func(float64) float64, lower, upper float64) float64 {
	previous := 0.0
	n := in.segments
	for {
		width := (upper - lower) / float64(n)
		result := f(lower) + f(upper)
		for p := 1; p < n/2; p++ {
			result += 2 * f(lower+float64(2*p)*width)
		}
		for p := 1; p <= n/2; p++ {
			result += 4 * f(lower+float64(2*p-1)*width)
		}
		result *= width / 3
		// A NaN or infinite sum can never converge; refining would loop
		// forever.
		if math.IsNaN(result) || math.IsInf(result, 0) {
			return result
		}
		if math.Abs(result-previous) < in.epsilon {
			return result
		}
		previous = result
		n *= 2
	}
}

// IntegrateMinusInfinityTo approximates the integral of a symmetric
// density f from negative infinity to upper. f must be symmetric about 0
// and integrate to 1 over the real line.
func (in *Integrator) IntegrateMinusInfinityTo(f func(float64) float64, upper float64) float64 {
	result := in.Integrate(f, 0, math.Abs(upper))
	if upper < 0 {
		return 0.5 - result
	}
	return 0.5 + result
}

// Derivative returns a function approximating the derivative of f using the
// forward difference with step dx.
func Derivative(f func(float64) float64, dx float64) func(float64) float64 {
	return func(x float64) float64 {
		return (f(x+dx) - f(x)) / dx
	}
}

// NewtonRaphson iterates from guess until successive approximations of a
// root of f differ by less than tolerance.
func NewtonRaphson(f func(float64) float64, guess, tolerance float64) float64 {
	df := Derivative(f, 1e-7)
	next := func(x float64) float64 { return x - f(x)/df(x) }
	current := guess
	candidate := next(guess)
	for math.Abs(candidate-current) > tolerance {
		current = candidate
		candidate = next(current)
	}
	return candidate
}

// ApproximateInverse returns x such that f(x) is approximately y.
func ApproximateInverse(f func(float64) float64, y float64) float64 {
	return NewtonRaphson(func(x float64) float64 { return f(x) - y }, 0.5, 1e-7)
}
