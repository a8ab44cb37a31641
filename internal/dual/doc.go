// Package dual implements forward-mode automatic differentiation via
// dual numbers: a value paired with its derivative with respect to a
// caller-chosen set of independent variables.
//
// [Dual] satisfies [num.Number] over itself, so duals nest. A
// Dual[num.Float] carries first derivatives; a Dual[Dual[num.Float]]
// carries second derivatives; each extra nesting level adds one
// derivative order with no new code. [Scalar] and [Scalar2] name the
// two depths used in practice.
//
// Independent variables come from [Var], which seeds the derivative with a unit basis vector marking the variable's
// position among the independent set. The algebra never tracks which
// variables are independent beyond that seed shape; keeping operand
// seeds consistent across an expression is the caller's contract.
//
// Constants come from plain values via [Const] or [num.Const], which
// attach an all-zero derivative. Note the classic trap: rebuilding an
// existing independent variable from a plain value this way silently
// turns it into a constant. Use [Dual.Rebind] to change a variable's
// value while keeping its seed.
//
// There is no implicit narrowing from a Dual to its bare value type;
// assigning a Dual expression to a float64 is a compile error. The one
// escape hatch is Real (or [num.RawValue]), which strips all
// derivative information recursively.
package dual
