package calculus

import (
	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// Gradient returns the derivative bundle of a differentiable scalar:
// entry i is ∂f/∂x_i under the Coords seeding convention.
func Gradient[T num.Number[T]](f dual.Dual[T]) tensor.Vec[T] {
	return f.Derivatives()
}

// Divergence contracts a vector field's component index against its
// derivative index: Σ_i ∂F_i/∂x_i. Every entry must have been
// evaluated at a position seeded with at least len(field) independent
// variables; shorter seeds panic via the index.
func Divergence[T num.Number[T]](field tensor.Vec[dual.Dual[T]]) T {
	if len(field) == 0 {
		panic("calculus: divergence of empty field")
	}
	sum := field[0].Der[0]
	for i := 1; i < len(field); i++ {
		sum = sum.Add(field[i].Der[i])
	}
	return sum
}

// TensorDivergence contracts the outer (row) index of a rank-2 field
// against the derivative index: out[j] = Σ_i ∂T_ij/∂x_i.
func TensorDivergence[T num.Number[T]](field tensor.Vec[tensor.Vec[dual.Dual[T]]]) tensor.Vec[T] {
	if len(field) == 0 {
		panic("calculus: divergence of empty field")
	}
	cols := field[0].Len()
	out := make(tensor.Vec[T], cols)
	for j := 0; j < cols; j++ {
		sum := field[0][j].Der[0]
		for i := 1; i < len(field); i++ {
			sum = sum.Add(field[i][j].Der[i])
		}
		out[j] = sum
	}
	return out
}

// Jacobian lays out a vector field's derivatives as rows:
// out[i][j] = ∂F_i/∂x_j.
func Jacobian[T num.Number[T]](field tensor.Vec[dual.Dual[T]]) tensor.Vec[tensor.Vec[T]] {
	out := make(tensor.Vec[tensor.Vec[T]], len(field))
	for i := range field {
		out[i] = field[i].Derivatives()
	}
	return out
}

// Hessian extracts second derivatives from a doubly nested dual:
// out[i][j] = ∂²f/∂x_i∂x_j under the Coords2 seeding convention.
func Hessian[T num.Number[T]](f dual.Dual[dual.Dual[T]]) tensor.Vec[tensor.Vec[T]] {
	out := make(tensor.Vec[tensor.Vec[T]], f.Der.Len())
	for i, d := range f.Der {
		out[i] = d.Derivatives()
	}
	return out
}

// Laplacian is the Hessian trace: Σ_i ∂²f/∂x_i².
func Laplacian[T num.Number[T]](f dual.Dual[dual.Dual[T]]) T {
	if f.Der.Len() == 0 {
		panic("calculus: laplacian of unseeded value")
	}
	sum := f.Der[0].Der[0]
	for i := 1; i < f.Der.Len(); i++ {
		sum = sum.Add(f.Der[i].Der[i])
	}
	return sum
}
