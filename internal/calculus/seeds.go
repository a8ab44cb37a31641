package calculus

import (
	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// Coords seeds a position vector of independent variables for
// first-derivative work: coordinate i carries the unit seed e_i.
func Coords(xs ...float64) tensor.Vec[dual.Scalar] {
	n := len(xs)
	out := make(tensor.Vec[dual.Scalar], n)
	for i, v := range xs {
		out[i] = dual.Var(num.Float(v), i, n)
	}
	return out
}

// Coords2 seeds a position vector two derivative levels deep, for
// Hessians and Laplacians. Both nesting levels use the same basis
// direction per coordinate, so entry [i][j] of the outer derivative of
// the inner derivative is ∂²/∂x_i∂x_j.
func Coords2(xs ...float64) tensor.Vec[dual.Scalar2] {
	n := len(xs)
	like := dual.Const(num.Float(0), n)
	out := make(tensor.Vec[dual.Scalar2], n)
	for i, v := range xs {
		out[i] = dual.Scalar2{
			Val: dual.Var(num.Float(v), i, n),
			Der: tensor.Basis(like, i, n),
		}
	}
	return out
}
