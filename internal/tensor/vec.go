package tensor

import (
	"fmt"

	"github.com/avaldr/mms/internal/num"
)

// Vec is a fixed-length tuple of entries. The length is set at
// construction and every combining operation requires both operands to
// match it.
type Vec[T num.Elem[T]] []T

// New builds a vector from an entry list.
func New[T num.Elem[T]](entries ...T) Vec[T] {
	v := make(Vec[T], len(entries))
	copy(v, entries)
	return v
}

// Zeros builds an n-entry vector of like.Zero() values. The witness
// argument carries the entry shape, which matters when T is itself a
// structured type.
func Zeros[T num.Elem[T]](like T, n int) Vec[T] {
	v := make(Vec[T], n)
	for i := range v {
		v[i] = like.Zero()
	}
	return v
}

func (v Vec[T]) Len() int { return len(v) }

func (v Vec[T]) Clone() Vec[T] {
	c := make(Vec[T], len(v))
	copy(c, v)
	return c
}

func (v Vec[T]) checkLen(w Vec[T]) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("tensor: dimension mismatch (%d vs %d)", len(v), len(w)))
	}
}

func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	v.checkLen(w)
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Add(w[i])
	}
	return r
}

func (v Vec[T]) Sub(w Vec[T]) Vec[T] {
	v.checkLen(w)
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Sub(w[i])
	}
	return r
}

func (v Vec[T]) Neg() Vec[T] {
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Neg()
	}
	return r
}

// Scale multiplies every entry by a plain constant.
func (v Vec[T]) Scale(c float64) Vec[T] {
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Scale(c)
	}
	return r
}

// Zero returns the additive identity with the receiver's shape.
func (v Vec[T]) Zero() Vec[T] {
	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = v[i].Zero()
	}
	return r
}
