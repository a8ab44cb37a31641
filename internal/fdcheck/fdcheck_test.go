package fdcheck

import (
	"math"
	"testing"
)

func TestPartial(t *testing.T) {
	f := func(x []float64) float64 { return x[0] * x[0] * x[1] }

	got := Partial(f, []float64{3, 2}, 0)
	if math.Abs(got-12) > 1e-6 {
		t.Errorf("d(x²y)/dx at (3,2): got %v, expected 12", got)
	}

	got = Partial(f, []float64{3, 2}, 1)
	if math.Abs(got-9) > 1e-6 {
		t.Errorf("d(x²y)/dy at (3,2): got %v, expected 9", got)
	}
}

func TestPartialRestoresPoint(t *testing.T) {
	x := []float64{1.5, -2.5}
	Partial(func(y []float64) float64 { return y[0] + y[1] }, x, 0)
	if x[0] != 1.5 || x[1] != -2.5 {
		t.Errorf("evaluation point modified: %v", x)
	}
}

func TestGradient(t *testing.T) {
	f := func(x []float64) float64 { return math.Sin(x[0]) * math.Exp(x[1]) }
	x, y := 0.7, -0.3

	g := Gradient(f, []float64{x, y})

	wantX := math.Cos(x) * math.Exp(y)
	wantY := math.Sin(x) * math.Exp(y)
	if math.Abs(g[0]-wantX) > 1e-7 {
		t.Errorf("grad x: got %v, expected %v", g[0], wantX)
	}
	if math.Abs(g[1]-wantY) > 1e-7 {
		t.Errorf("grad y: got %v, expected %v", g[1], wantY)
	}
}

func TestDivergence(t *testing.T) {
	f := func(x []float64) []float64 { return []float64{x[0], x[1]} }

	got, err := Divergence(f, []float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2) > 1e-7 {
		t.Errorf("div(x,y): got %v, expected 2", got)
	}
}

func TestDivergenceDimensionMismatch(t *testing.T) {
	f := func(x []float64) []float64 { return []float64{x[0]} }

	if _, err := Divergence(f, []float64{1, 2}); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestLaplacian(t *testing.T) {
	// Δ(x² + y²) = 4
	f := func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }

	got := Laplacian(f, []float64{0.3, -1.1})
	if math.Abs(got-4) > 1e-4 {
		t.Errorf("laplacian: got %v, expected 4", got)
	}
}
