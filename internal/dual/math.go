package dual

import "github.com/avaldr/mms/internal/tensor"

// Transcendentals. Each applies the function to the value and the
// chain rule f(a)' = f'(a)·a' to the derivative. Domain errors follow
// the underlying scalar: Log at zero produces -Inf with an Inf-scaled
// derivative, Sqrt of a negative produces NaN throughout. Nothing is
// intercepted.

func (d Dual[T]) Sin() Dual[T] {
	return Dual[T]{Val: d.Val.Sin(), Der: tensor.ScaleBy(d.Der, d.Val.Cos())}
}

func (d Dual[T]) Cos() Dual[T] {
	return Dual[T]{Val: d.Val.Cos(), Der: tensor.ScaleBy(d.Der, d.Val.Sin().Neg())}
}

func (d Dual[T]) Tan() Dual[T] {
	// d tan = dx / cos²x
	c2 := d.Val.Cos()
	c2 = c2.Mul(c2)
	return Dual[T]{Val: d.Val.Tan(), Der: tensor.ScaleBy(d.Der, c2.One().Div(c2))}
}

func (d Dual[T]) Exp() Dual[T] {
	e := d.Val.Exp()
	return Dual[T]{Val: e, Der: tensor.ScaleBy(d.Der, e)}
}

func (d Dual[T]) Log() Dual[T] {
	return Dual[T]{Val: d.Val.Log(), Der: tensor.ScaleBy(d.Der, d.Val.One().Div(d.Val))}
}

func (d Dual[T]) Sqrt() Dual[T] {
	s := d.Val.Sqrt()
	twoS := s.Add(s)
	return Dual[T]{Val: s, Der: tensor.ScaleBy(d.Der, twoS.One().Div(twoS))}
}

// PowConst raises to a constant exponent using the monomial rule
// (x^p)' = p·x^(p-1)·x'.
func (d Dual[T]) PowConst(p float64) Dual[T] {
	f := d.Val.PowConst(p - 1).Scale(p)
	return Dual[T]{Val: d.Val.PowConst(p), Der: tensor.ScaleBy(d.Der, f)}
}

// Pow raises to a differentiable exponent using the general rule
// (a^b)' = a^b·(b'·ln a + b·a'/a).
func (d Dual[T]) Pow(e Dual[T]) Dual[T] {
	v := d.Val.Pow(e.Val)
	inner := tensor.ScaleBy(e.Der, d.Val.Log()).Add(tensor.ScaleBy(d.Der, e.Val.Div(d.Val)))
	return Dual[T]{Val: v, Der: tensor.ScaleBy(inner, v)}
}
