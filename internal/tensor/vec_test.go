package tensor

import (
	"testing"

	"github.com/avaldr/mms/internal/num"
)

// Vec must itself satisfy the entry contract so tensors can nest.
var _ num.Elem[Vec[num.Float]] = Vec[num.Float]{}
var _ num.Elem[Vec[Vec[num.Float]]] = Vec[Vec[num.Float]]{}

func vec(xs ...float64) Vec[num.Float] {
	v := make(Vec[num.Float], len(xs))
	for i, x := range xs {
		v[i] = num.Float(x)
	}
	return v
}

func TestVecElementwise(t *testing.T) {
	u := vec(1, 2, 3)
	v := vec(4, 5, 6)

	sum := u.Add(v)
	for i, want := range []num.Float{5, 7, 9} {
		if sum[i] != want {
			t.Errorf("add[%d]: got %v, expected %v", i, sum[i], want)
		}
	}

	diff := v.Sub(u)
	for i, want := range []num.Float{3, 3, 3} {
		if diff[i] != want {
			t.Errorf("sub[%d]: got %v, expected %v", i, diff[i], want)
		}
	}

	neg := u.Neg()
	if neg[0] != -1 || neg[2] != -3 {
		t.Errorf("neg: got %v", neg)
	}

	scaled := u.Scale(2)
	if scaled[0] != 2 || scaled[2] != 6 {
		t.Errorf("scale: got %v", scaled)
	}
}

func TestVecDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on dimension mismatch")
		}
	}()
	vec(1, 2).Add(vec(1, 2, 3))
}

func TestVecCloneIsIndependent(t *testing.T) {
	u := vec(1, 2)
	c := u.Clone()
	c[0] = 9
	if u[0] != 1 {
		t.Error("clone shares backing storage")
	}
}

func TestVecZeroKeepsShape(t *testing.T) {
	z := vec(1, 2, 3).Zero()
	if z.Len() != 3 {
		t.Fatalf("expected length 3, got %d", z.Len())
	}
	for i := range z {
		if z[i] != 0 {
			t.Errorf("zero[%d]: got %v", i, z[i])
		}
	}
}

func TestNestedVec(t *testing.T) {
	a := New(vec(1, 2), vec(3, 4))
	b := New(vec(10, 20), vec(30, 40))

	sum := a.Add(b)
	if sum[0][1] != 22 || sum[1][0] != 33 {
		t.Errorf("nested add: got %v", sum)
	}

	z := a.Zero()
	if z[1][1] != 0 || z[0].Len() != 2 {
		t.Errorf("nested zero: got %v", z)
	}
}
