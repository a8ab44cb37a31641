package tensor

import (
	"fmt"

	"github.com/avaldr/mms/internal/num"
)

// ScaleBy multiplies every entry of v by the scalar s using the entry
// type's own multiplication rule. When T is a dual number this is the
// broadcast that carries the chain rule through a gradient.
func ScaleBy[T num.Number[T]](v Vec[T], s T) Vec[T] {
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Mul(s)
	}
	return r
}

// Dot contracts two equal-length vectors.
func Dot[T num.Number[T]](u, v Vec[T]) T {
	u.checkLen(v)
	if len(u) == 0 {
		panic("tensor: dot of empty vectors")
	}
	sum := u[0].Mul(v[0])
	for i := 1; i < len(u); i++ {
		sum = sum.Add(u[i].Mul(v[i]))
	}
	return sum
}

// Outer builds the rank-2 tensor with entries out[i][j] = u[i]*v[j].
// Entry multiplication follows T's rule, so dual-number entries
// propagate derivatives through the product.
func Outer[T num.Number[T]](u, v Vec[T]) Vec[Vec[T]] {
	out := make(Vec[Vec[T]], len(u))
	for i := range u {
		row := make(Vec[T], len(v))
		for j := range v {
			row[j] = u[i].Mul(v[j])
		}
		out[i] = row
	}
	return out
}

// Identity builds the n-by-n identity tensor at the entry type of the
// witness value.
func Identity[T num.Number[T]](like T, n int) Vec[Vec[T]] {
	out := make(Vec[Vec[T]], n)
	for i := range out {
		row := make(Vec[T], n)
		for j := range row {
			if i == j {
				row[j] = like.One()
			} else {
				row[j] = like.Zero()
			}
		}
		out[i] = row
	}
	return out
}

// Basis builds the unit vector e_i of length n: the derivative seed
// marking position i among a set of n independent variables.
func Basis[T num.Number[T]](like T, i, n int) Vec[T] {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("tensor: basis index %d out of range [0,%d)", i, n))
	}
	v := Zeros(like, n)
	v[i] = like.One()
	return v
}

// EqualApprox reports whether two vectors of scalar-like entries agree
// entrywise within tol on their innermost values.
func EqualApprox[T num.Number[T]](u, v Vec[T], tol float64) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		d := u[i].Sub(v[i]).Real()
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}
