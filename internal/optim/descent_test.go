package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/field"
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// (x-1)^2 + (y+2)^2, minimum at (1, -2)
func bowl[T num.Number[T]](x tensor.Vec[T]) T {
	a := x[0].Shift(-1)
	b := x[1].Shift(2)
	return a.Mul(a).Add(b.Mul(b))
}

func TestMinimizeBowl(t *testing.T) {
	d := Descent{Step: 0.25, MaxIters: 200, Tol: 1e-9}

	tr, err := d.Minimize(context.Background(), bowl[dual.Scalar], []float64{5, 5})
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	if math.Abs(tr.Point[0]-1) > 1e-6 || math.Abs(tr.Point[1]+2) > 1e-6 {
		t.Errorf("converged to %v, want (1, -2)", tr.Point)
	}
	if tr.Value > 1e-10 {
		t.Errorf("value at minimum = %g", tr.Value)
	}
}

func TestMinimizeGaussianPeak(t *testing.T) {
	// minimize the negated bump; peak at the origin
	neg := func(x tensor.Vec[dual.Scalar]) dual.Scalar {
		return field.Gaussian[dual.Scalar](x).Neg()
	}

	d := Descent{Step: 0.2, MaxIters: 500, Tol: 1e-8}
	tr, err := d.Minimize(context.Background(), neg, []float64{0.5, -0.3})
	if err != nil {
		t.Fatalf("minimize failed: %v", err)
	}

	if math.Abs(tr.Point[0]) > 1e-5 || math.Abs(tr.Point[1]) > 1e-5 {
		t.Errorf("converged to %v, want origin", tr.Point)
	}
	if math.Abs(tr.Value+1) > 1e-8 {
		t.Errorf("value at peak = %g, want -1", tr.Value)
	}
}

func TestMinimizeExhaustsIters(t *testing.T) {
	d := Descent{Step: 1e-6, MaxIters: 5, Tol: 1e-12}

	tr, err := d.Minimize(context.Background(), bowl[dual.Scalar], []float64{5, 5})
	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("expected ErrNotConverged, got %v", err)
	}
	if tr.Iters != 5 {
		t.Errorf("expected 5 iterations, got %d", tr.Iters)
	}
}

func TestMinimizeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := DefaultDescent()
	if _, err := d.Minimize(ctx, bowl[dual.Scalar], []float64{5, 5}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
