// Package grid samples a field and its derivatives over a rectangular
// 2-D domain, producing tabular results for storage, plotting and
// export. Each sampled derivative is cross-checked against a
// finite-difference oracle and the accumulated error norms are
// attached to the result.
package grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/avaldr/mms/internal/calculus"
	"github.com/avaldr/mms/internal/fdcheck"
	"github.com/avaldr/mms/internal/field"
	"github.com/avaldr/mms/internal/metrics"
)

var (
	ErrUnknownQuantity = errors.New("grid: unknown quantity")
	ErrKindMismatch    = errors.New("grid: quantity not defined for field kind")
	ErrBadSpec         = errors.New("grid: invalid sampling spec")
)

// Spec describes one sampling run.
type Spec struct {
	Nx, Ny         int
	X0, X1, Y0, Y1 float64
	// Quantity selects what to tabulate: "value", "gradient" or
	// "laplacian" for scalar fields, "value" or "divergence" for
	// vector fields.
	Quantity string
}

func DefaultSpec() Spec {
	return Spec{Nx: 32, Ny: 32, X0: -1, X1: 1, Y0: -1, Y1: 1, Quantity: "value"}
}

func (s Spec) validate() error {
	if s.Nx < 2 || s.Ny < 2 {
		return fmt.Errorf("%w: need at least 2 samples per axis", ErrBadSpec)
	}
	if s.X1 <= s.X0 || s.Y1 <= s.Y0 {
		return fmt.Errorf("%w: empty domain", ErrBadSpec)
	}
	return nil
}

// Quantities lists the valid quantities for a field kind.
func Quantities(kind field.Kind) []string {
	if kind == field.VectorKind {
		return []string{"value", "divergence"}
	}
	return []string{"value", "gradient", "laplacian"}
}

// Result is one completed sampling run. Each row of Points holds x, y
// followed by the named Columns. Metrics carries the AD-vs-oracle
// error norms accumulated during the run.
type Result struct {
	Columns []string
	Points  [][]float64
	Metrics map[string]float64
}

// rowFn computes the column values at one node and returns the pair
// (computed, oracle) fed to the norms; oracle-less quantities return
// ok=false.
type rowFn func(x, y float64) (cols []float64, got, want float64, ok bool)

// Run samples the field over the spec's grid. The context is checked
// once per grid row, so cancellation is prompt even on large grids.
func Run(ctx context.Context, e *field.Entry, spec Spec) (*Result, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	columns, sample, err := sampler(e, spec.Quantity)
	if err != nil {
		return nil, err
	}

	norms := []metrics.Norm{metrics.NewLinf(), metrics.NewL2(), metrics.NewMaxRel()}

	dx := (spec.X1 - spec.X0) / float64(spec.Nx-1)
	dy := (spec.Y1 - spec.Y0) / float64(spec.Ny-1)

	res := &Result{
		Columns: columns,
		Points:  make([][]float64, 0, spec.Nx*spec.Ny),
	}

	for j := 0; j < spec.Ny; j++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		y := spec.Y0 + float64(j)*dy
		for i := 0; i < spec.Nx; i++ {
			x := spec.X0 + float64(i)*dx

			cols, got, want, ok := sample(x, y)
			if ok {
				for _, n := range norms {
					n.Observe(got, want)
				}
			}

			row := append([]float64{x, y}, cols...)
			res.Points = append(res.Points, row)
		}
	}

	res.Metrics = make(map[string]float64, len(norms))
	for _, n := range norms {
		res.Metrics[n.Name()] = n.Value()
	}

	return res, nil
}

func sampler(e *field.Entry, quantity string) ([]string, rowFn, error) {
	switch e.Kind {
	case field.ScalarKind:
		return scalarSampler(e, quantity)
	case field.VectorKind:
		return vectorSampler(e, quantity)
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrKindMismatch, e.Kind)
}

func scalarSampler(e *field.Entry, quantity string) ([]string, rowFn, error) {
	switch quantity {
	case "value":
		// oracle: the plain-float instantiation of the same definition
		return []string{"value"}, func(x, y float64) ([]float64, float64, float64, bool) {
			v := e.First(calculus.Coords(x, y)).Real()
			return []float64{v}, v, e.EvalPlain([]float64{x, y}), true
		}, nil
	case "gradient":
		return []string{"value", "grad_x", "grad_y"}, func(x, y float64) ([]float64, float64, float64, bool) {
			f := e.First(calculus.Coords(x, y))
			g := calculus.Gradient(f)
			fd := fdcheck.Gradient(e.EvalPlain, []float64{x, y})
			return []float64{f.Real(), float64(g[0]), float64(g[1])}, float64(g[0]), fd[0], true
		}, nil
	case "laplacian":
		return []string{"value", "laplacian"}, func(x, y float64) ([]float64, float64, float64, bool) {
			f := e.Second(calculus.Coords2(x, y))
			lap := float64(calculus.Laplacian(f))
			fd := fdcheck.Laplacian(e.EvalPlain, []float64{x, y})
			return []float64{f.Real(), lap}, lap, fd, true
		}, nil
	case "divergence":
		return nil, nil, fmt.Errorf("%w: divergence of a scalar field", ErrKindMismatch)
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownQuantity, quantity)
}

func vectorSampler(e *field.Entry, quantity string) ([]string, rowFn, error) {
	switch quantity {
	case "value":
		return []string{"fx", "fy"}, func(x, y float64) ([]float64, float64, float64, bool) {
			v := e.FirstVec(calculus.Coords(x, y))
			return []float64{v[0].Real(), v[1].Real()}, 0, 0, false
		}, nil
	case "divergence":
		return []string{"fx", "fy", "divergence"}, func(x, y float64) ([]float64, float64, float64, bool) {
			v := e.FirstVec(calculus.Coords(x, y))
			div := float64(calculus.Divergence(v))
			fd, err := fdcheck.Divergence(e.EvalPlainVec, []float64{x, y})
			if err != nil {
				return []float64{v[0].Real(), v[1].Real(), div}, 0, 0, false
			}
			return []float64{v[0].Real(), v[1].Real(), div}, div, fd, true
		}, nil
	case "gradient", "laplacian":
		return nil, nil, fmt.Errorf("%w: %s of a vector field", ErrKindMismatch, quantity)
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownQuantity, quantity)
}
