package num

// Elem is the entry contract for tensors: the additive group operations
// plus scaling by a plain constant. Zero is receiver-shaped so that
// composite types (vectors of vectors, duals with seeded gradients)
// can produce an additive identity matching their own structure.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Neg() T
	Scale(c float64) T
	Zero() T
}

// Number is the full differentiable-scalar contract. Float satisfies
// it directly; a dual number over any Number satisfies it too, which
// is what makes higher-order differentiation a matter of nesting
// rather than new code.
//
// Shift adds a plain constant, One is the multiplicative identity with
// receiver shape, and Real strips all derivative structure down to the
// innermost float64.
type Number[T any] interface {
	Elem[T]
	Mul(T) T
	Div(T) T
	Shift(c float64) T
	One() T
	Sin() T
	Cos() T
	Tan() T
	Exp() T
	Log() T
	Sqrt() T
	Pow(T) T
	PowConst(p float64) T
	Real() float64
}

// RawValue is the single explicit narrowing escape hatch: it unwraps x
// recursively and returns the innermost plain value, discarding every
// derivative component along the way.
func RawValue[T Number[T]](x T) float64 {
	return x.Real()
}

// Const builds the constant c with the same structure as like: the
// value is c, every derivative component is zero. This is the one
// promotion rule every mixed scalar/dual operation reduces to.
func Const[T Number[T]](like T, c float64) T {
	return like.One().Scale(c)
}
