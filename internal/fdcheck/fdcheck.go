// Package fdcheck estimates derivatives by central finite differences.
// It exists as an independent oracle for validating the forward-mode
// algebra: it shares no code with the dual-number packages and works
// on plain float64 functions.
//
// Step sizes follow the usual cube-root-of-epsilon rule for central
// differences, scaled to the magnitude of the evaluation point.
package fdcheck

import (
	"errors"
	"math"
)

var ErrDimensionMismatch = errors.New("fdcheck: dimension mismatch between point and field")

var cubeEps = math.Pow(math.Nextafter(1, 2)-1, 1.0/3)

// Func is a scalar function of an n-vector.
type Func func(x []float64) float64

// VecFunc is a vector field over an n-vector.
type VecFunc func(x []float64) []float64

func step(x float64) float64 {
	return math.Copysign(cubeEps, x) * math.Max(1, math.Abs(x))
}

// Partial estimates ∂f/∂x_i at x by the central difference.
func Partial(f Func, x []float64, i int) float64 {
	h := step(x[i])
	xi := x[i]

	x[i] = xi + h
	fp := f(x)
	x[i] = xi - h
	fm := f(x)
	x[i] = xi

	return (fp - fm) / (2 * h)
}

// Gradient estimates all partials of f at x.
func Gradient(f Func, x []float64) []float64 {
	g := make([]float64, len(x))
	for i := range x {
		g[i] = Partial(f, x, i)
	}
	return g
}

// Divergence estimates Σ_i ∂F_i/∂x_i at x.
func Divergence(f VecFunc, x []float64) (float64, error) {
	if len(f(x)) != len(x) {
		return 0, ErrDimensionMismatch
	}
	sum := 0.0
	for i := range x {
		i := i
		sum += Partial(func(y []float64) float64 { return f(y)[i] }, x, i)
	}
	return sum, nil
}

// SecondPartial estimates ∂²f/∂x_i² at x by the three-point stencil.
func SecondPartial(f Func, x []float64, i int) float64 {
	// wider step: second differences lose more precision
	h := math.Sqrt(cubeEps) * math.Max(1, math.Abs(x[i]))
	xi := x[i]

	f0 := f(x)
	x[i] = xi + h
	fp := f(x)
	x[i] = xi - h
	fm := f(x)
	x[i] = xi

	return (fp - 2*f0 + fm) / (h * h)
}

// Laplacian estimates Σ_i ∂²f/∂x_i² at x.
func Laplacian(f Func, x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += SecondPartial(f, x, i)
	}
	return sum
}
