// Package field holds the benchmark fields used to validate the
// differentiation operators and to drive the sampling commands.
//
// Each field is a single generic function over [num.Number], written
// as ordinary arithmetic. The registry stores three instantiations of
// that one definition: plain floats (the finite-difference oracle
// path), first-order duals (gradients, divergence) and second-order
// duals (Laplacians). Nothing about a field changes between
// derivative orders; only the type argument does.
package field
