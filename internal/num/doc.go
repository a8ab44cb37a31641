// Package num defines the scalar contract shared by the whole algebra.
//
// Two constraints layer the contract:
//
//   - [Elem]: the additive operations a tensor entry needs (Add, Sub,
//     Neg, Scale, Zero). Tensors themselves satisfy Elem, which is what
//     allows rank-N nesting.
//   - [Number]: Elem plus multiplication, division and the
//     transcendental set. Satisfied by [Float] and by dual numbers at
//     any nesting depth, so code written against Number differentiates
//     to any order without modification.
//
// [Float] is the base scalar. It follows IEEE 754 semantics untouched:
// Log of a negative value yields NaN, division by zero yields Inf, and
// those values propagate through derivative components the same way
// they propagate through values. Nothing in the algebra intercepts
// them.
//
// Narrowing back to a plain float64 is only possible through
// [Number]'s Real method (or the [RawValue] helper), which recursively
// unwraps to the innermost value. There is no implicit conversion from
// any algebra type to float64; assigning one to a float64 variable is
// a compile error.
package num
