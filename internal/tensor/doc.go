// Package tensor provides the fixed-size array algebra.
//
// [Vec] is an ordered homogeneous tuple whose length is fixed at
// construction. Entries satisfy [num.Elem], and Vec itself satisfies
// Elem, so vectors nest: Vec[Vec[T]] is a rank-2 tensor, and so on for
// any rank. Entries may equally be dual numbers, which turns the
// derivative component of a scalar into a gradient and the gradient of
// a vector field into a Jacobian.
//
// Combining two vectors of different lengths is a programming error
// and panics immediately. There is no runtime shape negotiation:
// shapes are fixed by construction and mismatches fail fast.
package tensor
