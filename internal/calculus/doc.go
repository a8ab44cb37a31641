// Package calculus provides the differential operators that consume
// dual/tensor compositions: gradient, divergence, Jacobian, Hessian
// and Laplacian.
//
// The operators are purely structural: they contract array indices
// against derivative indices by position and never inspect what a
// derivative "means". The position convention is fixed by the seeding
// helpers [Coords] and [Coords2], which seed coordinate i with basis
// direction i; every operator in this package contracts on that same
// order. A caller that seeds in a different order owns the resulting
// index bookkeeping.
package calculus
