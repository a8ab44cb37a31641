package dual

import (
	"math"
	"testing"

	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// x returns the single independent variable of a 1-D problem.
func x(v float64) Scalar {
	return Var(num.Float(v), 0, 1)
}

func TestPromotionRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -2.5, 1e-9, 1e9} {
		c := Const(num.Float(v), 2)
		if got := num.RawValue(c); got != v {
			t.Errorf("raw(const(%v)): got %v", v, got)
		}
		for i, d := range c.Der {
			if d != 0 {
				t.Errorf("const(%v) derivative[%d] nonzero: %v", v, i, d)
			}
		}
	}
}

func TestSumRule(t *testing.T) {
	v := x(3.0)
	f := v.Add(v)
	if f.Real() != 6 {
		t.Errorf("value: got %v, expected 6", f.Real())
	}
	if f.Der[0] != 2 {
		t.Errorf("d(x+x)/dx: got %v, expected 2", f.Der[0])
	}
}

func TestProductRule(t *testing.T) {
	v := x(3.0)
	f := v.Mul(v)
	if f.Real() != 9 {
		t.Errorf("value: got %v, expected 9", f.Real())
	}
	if f.Der[0] != 6 {
		t.Errorf("d(x*x)/dx at 3: got %v, expected 6", f.Der[0])
	}
}

func TestQuotientRule(t *testing.T) {
	// f = x / (x+1), f' = 1/(x+1)²
	v := x(2.0)
	f := v.Div(v.Shift(1))
	want := 1.0 / 9.0
	if math.Abs(float64(f.Der[0])-want) > 1e-15 {
		t.Errorf("quotient rule: got %v, expected %v", f.Der[0], want)
	}
}

func TestConstantOperandKeepsSeedShape(t *testing.T) {
	v := Var(num.Float(1.5), 1, 3)
	c := num.Const(v, 4.0)

	f := v.Mul(c)
	if f.Der.Len() != 3 {
		t.Fatalf("expected 3 derivative entries, got %d", f.Der.Len())
	}
	if f.Der[1] != 4 {
		t.Errorf("d(4x)/dx: got %v, expected 4", f.Der[1])
	}
	if f.Der[0] != 0 || f.Der[2] != 0 {
		t.Errorf("off-seed derivatives should stay zero: %v", f.Der)
	}
}

func TestRebindKeepsIndependence(t *testing.T) {
	v := Var(num.Float(1.0), 0, 2)
	w := v.Rebind(5.0)

	if w.Real() != 5 {
		t.Errorf("rebind value: got %v", w.Real())
	}
	if w.Der[0] != 1 || w.Der[1] != 0 {
		t.Errorf("rebind must keep the unit seed, got %v", w.Der)
	}

	// The trap this replaces: rebuilding from a plain value demotes.
	demoted := Const(num.Float(5.0), 2)
	if demoted.Der[0] != 0 {
		t.Errorf("const should carry a zero seed, got %v", demoted.Der)
	}
}

func TestGradientTwoVariables(t *testing.T) {
	// f(x,y) = x²y + y³
	// ∂f/∂x = 2xy, ∂f/∂y = x² + 3y²
	xv := Var(num.Float(2.0), 0, 2)
	yv := Var(num.Float(3.0), 1, 2)

	f := xv.Mul(xv).Mul(yv).Add(yv.PowConst(3))

	if got := f.Real(); got != 39 {
		t.Errorf("value: got %v, expected 39", got)
	}
	if got := float64(f.Der[0]); got != 12 {
		t.Errorf("df/dx: got %v, expected 12", got)
	}
	if got := float64(f.Der[1]); got != 31 {
		t.Errorf("df/dy: got %v, expected 31", got)
	}
}

func TestSecondOrderNesting(t *testing.T) {
	// f(x,y) = x²y³, analytic Hessian [[2y³, 6xy²], [6xy², 6x²y]].
	xs, ys := 1.5, 0.5

	mk := func(v float64, i int) Scalar2 {
		inner := Var(num.Float(v), i, 2)
		return Scalar2{
			Val: inner,
			Der: tensor.Basis(Const(num.Float(0), 2), i, 2),
		}
	}
	xv := mk(xs, 0)
	yv := mk(ys, 1)

	f := xv.Mul(xv).Mul(yv.PowConst(3))

	want := [2][2]float64{
		{2 * ys * ys * ys, 6 * xs * ys * ys},
		{6 * xs * ys * ys, 6 * xs * xs * ys},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got := float64(f.Der[i].Der[j])
			if math.Abs(got-want[i][j]) > 1e-12 {
				t.Errorf("hessian[%d][%d]: got %v, expected %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestMismatchedSeedsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic combining mismatched seed shapes")
		}
	}()
	a := Var(num.Float(1), 0, 2)
	b := Var(num.Float(1), 0, 3)
	a.Add(b)
}
