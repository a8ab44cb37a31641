// Package optim finds critical points of scalar fields by gradient
// descent, with the gradient supplied exactly by forward-mode
// differentiation rather than estimated numerically.
package optim

import (
	"context"
	"errors"
	"math"

	"github.com/avaldr/mms/internal/calculus"
	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/field"
)

var ErrNotConverged = errors.New("optim: gradient norm did not reach tolerance")

type Descent struct {
	Step     float64
	MaxIters int
	Tol      float64
}

func DefaultDescent() Descent {
	return Descent{Step: 0.1, MaxIters: 1000, Tol: 1e-10}
}

// Trace holds the value at each accepted iterate, for plotting.
type Trace struct {
	Point  []float64
	Value  float64
	Norm   float64
	Iters  int
	Values []float64
}

// Minimize descends from x0 until the exact gradient norm falls below
// Tol or MaxIters is exhausted. The context is checked every
// iteration.
func (d Descent) Minimize(ctx context.Context, f field.Scalar[dual.Scalar], x0 []float64) (*Trace, error) {
	x := make([]float64, len(x0))
	copy(x, x0)

	tr := &Trace{Values: make([]float64, 0, d.MaxIters)}

	for it := 0; it < d.MaxIters; it++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fx := f(calculus.Coords(x...))
		g := calculus.Gradient(fx)

		norm := 0.0
		for _, gi := range g {
			norm += float64(gi) * float64(gi)
		}
		norm = math.Sqrt(norm)

		tr.Point = x
		tr.Value = fx.Real()
		tr.Norm = norm
		tr.Iters = it + 1
		tr.Values = append(tr.Values, fx.Real())

		if norm < d.Tol {
			return tr, nil
		}

		next := make([]float64, len(x))
		for i := range x {
			next[i] = x[i] - d.Step*float64(g[i])
		}
		x = next
	}

	return tr, ErrNotConverged
}
