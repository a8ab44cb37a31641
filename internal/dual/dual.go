package dual

import (
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

// Dual pairs a value with its derivative bundle. Der holds one entry
// per independent variable; its length is fixed when the variable set
// is seeded and must agree across every operand in an expression
// (mismatches panic inside the tensor layer).
type Dual[T num.Number[T]] struct {
	Val T
	Der tensor.Vec[T]
}

// Scalar is a first-derivative dual over the base float.
type Scalar = Dual[num.Float]

// Scalar2 is a doubly nested dual carrying second derivatives.
type Scalar2 = Dual[Dual[num.Float]]

var _ num.Number[Scalar] = Scalar{}
var _ num.Number[Scalar2] = Scalar2{}

// Var builds independent variable i of n: value v, derivative seeded
// with the unit basis vector e_i.
func Var[T num.Number[T]](v T, i, n int) Dual[T] {
	return Dual[T]{Val: v, Der: tensor.Basis(v, i, n)}
}

// Const builds a constant with respect to n independent variables: the
// derivative is identically zero.
func Const[T num.Number[T]](v T, n int) Dual[T] {
	return Dual[T]{Val: v, Der: tensor.Zeros(v, n)}
}

// Rebind replaces the value while keeping the derivative seed, so an
// independent variable stays independent. This is the safe form of
// "x = newValue"; rebuilding via Const would demote x to a constant.
func (d Dual[T]) Rebind(v T) Dual[T] {
	return Dual[T]{Val: v, Der: d.Der.Clone()}
}

// Value returns the value component.
func (d Dual[T]) Value() T { return d.Val }

// Derivatives returns a copy of the derivative bundle. Its meaning
// (which entry is which variable) follows the seed order chosen by the
// caller.
func (d Dual[T]) Derivatives() tensor.Vec[T] { return d.Der.Clone() }

// Real unwraps recursively to the innermost plain value, discarding
// all derivative information. This is the only narrowing conversion.
func (d Dual[T]) Real() float64 { return d.Val.Real() }

func (d Dual[T]) Add(e Dual[T]) Dual[T] {
	return Dual[T]{Val: d.Val.Add(e.Val), Der: d.Der.Add(e.Der)}
}

func (d Dual[T]) Sub(e Dual[T]) Dual[T] {
	return Dual[T]{Val: d.Val.Sub(e.Val), Der: d.Der.Sub(e.Der)}
}

func (d Dual[T]) Neg() Dual[T] {
	return Dual[T]{Val: d.Val.Neg(), Der: d.Der.Neg()}
}

// Mul applies the product rule: (ab)' = a'b + ab'.
func (d Dual[T]) Mul(e Dual[T]) Dual[T] {
	return Dual[T]{
		Val: d.Val.Mul(e.Val),
		Der: tensor.ScaleBy(d.Der, e.Val).Add(tensor.ScaleBy(e.Der, d.Val)),
	}
}

// Div applies the quotient rule: (a/b)' = (a'b - ab')/b².
func (d Dual[T]) Div(e Dual[T]) Dual[T] {
	n := tensor.ScaleBy(d.Der, e.Val).Sub(tensor.ScaleBy(e.Der, d.Val))
	b2 := e.Val.Mul(e.Val)
	return Dual[T]{
		Val: d.Val.Div(e.Val),
		Der: tensor.ScaleBy(n, b2.One().Div(b2)),
	}
}

// Scale multiplies by a plain constant.
func (d Dual[T]) Scale(c float64) Dual[T] {
	return Dual[T]{Val: d.Val.Scale(c), Der: d.Der.Scale(c)}
}

// Shift adds a plain constant; the derivative is untouched.
func (d Dual[T]) Shift(c float64) Dual[T] {
	return Dual[T]{Val: d.Val.Shift(c), Der: d.Der.Clone()}
}

// Zero returns the additive identity with the receiver's seed shape.
func (d Dual[T]) Zero() Dual[T] {
	return Dual[T]{Val: d.Val.Zero(), Der: d.Der.Zero()}
}

// One returns the constant 1 with the receiver's seed shape.
func (d Dual[T]) One() Dual[T] {
	return Dual[T]{Val: d.Val.One(), Der: d.Der.Zero()}
}
