package field

import (
	"math"

	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// Scalar is a scalar field over any differentiable scalar type.
type Scalar[T num.Number[T]] func(x tensor.Vec[T]) T

// Vector is a vector field over any differentiable scalar type.
type Vector[T num.Number[T]] func(x tensor.Vec[T]) tensor.Vec[T]

// Poly is x²y³.
func Poly[T num.Number[T]](x tensor.Vec[T]) T {
	return x[0].Mul(x[0]).Mul(x[1].PowConst(3))
}

// TrigProduct is sin(πx)·sin(πy); its Laplacian is -2π² times itself.
func TrigProduct[T num.Number[T]](x tensor.Vec[T]) T {
	return x[0].Scale(math.Pi).Sin().Mul(x[1].Scale(math.Pi).Sin())
}

// Gaussian is exp(-(x² + y²)).
func Gaussian[T num.Number[T]](x tensor.Vec[T]) T {
	return x[0].Mul(x[0]).Add(x[1].Mul(x[1])).Neg().Exp()
}

// Radial is F = (x, y), with divergence 2 everywhere in 2-D.
func Radial[T num.Number[T]](x tensor.Vec[T]) tensor.Vec[T] {
	return tensor.New(x[0], x[1])
}

// Swirl is F = (-y, x), divergence-free.
func Swirl[T num.Number[T]](x tensor.Vec[T]) tensor.Vec[T] {
	return tensor.New(x[1].Neg(), x[0])
}

// TrigFlow is F = (sin x·cos y, cos x·sin y), with divergence
// 2·cos x·cos y.
func TrigFlow[T num.Number[T]](x tensor.Vec[T]) tensor.Vec[T] {
	return tensor.New(
		x[0].Sin().Mul(x[1].Cos()),
		x[0].Cos().Mul(x[1].Sin()),
	)
}
