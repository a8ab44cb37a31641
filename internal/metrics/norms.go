package metrics

import "math"

// Norm accumulates pointwise discrepancies between a computed value
// and an oracle value over a sampling run.
type Norm interface {
	Name() string
	Observe(got, want float64)
	Value() float64
	Reset()
}

// Linf tracks the maximum absolute error.
type Linf struct {
	max float64
}

func NewLinf() *Linf { return &Linf{} }

func (n *Linf) Name() string { return "linf_err" }

func (n *Linf) Observe(got, want float64) {
	n.max = math.Max(n.max, math.Abs(got-want))
}

func (n *Linf) Value() float64 { return n.max }
func (n *Linf) Reset()         { n.max = 0 }

// L2 tracks the root-mean-square error.
type L2 struct {
	sum     float64
	samples int
}

func NewL2() *L2 { return &L2{} }

func (n *L2) Name() string { return "l2_err" }

func (n *L2) Observe(got, want float64) {
	d := got - want
	n.sum += d * d
	n.samples++
}

func (n *L2) Value() float64 {
	if n.samples == 0 {
		return 0
	}
	return math.Sqrt(n.sum / float64(n.samples))
}

func (n *L2) Reset() {
	n.sum = 0
	n.samples = 0
}

// MaxRel tracks the maximum relative error, with a unit floor on the
// denominator so values near zero do not blow the ratio up.
type MaxRel struct {
	max float64
}

func NewMaxRel() *MaxRel { return &MaxRel{} }

func (n *MaxRel) Name() string { return "max_rel_err" }

func (n *MaxRel) Observe(got, want float64) {
	rel := math.Abs(got-want) / math.Max(1, math.Abs(want))
	n.max = math.Max(n.max, rel)
}

func (n *MaxRel) Value() float64 { return n.max }
func (n *MaxRel) Reset()         { n.max = 0 }
