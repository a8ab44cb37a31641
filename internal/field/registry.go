package field

import (
	"fmt"
	"sort"

	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

type Kind string

const (
	ScalarKind Kind = "scalar"
	VectorKind Kind = "vector"
)

// Entry bundles the instantiations of one generic field definition.
// Plain feeds the finite-difference oracle, First feeds gradient and
// divergence extraction, Second feeds Laplacians.
type Entry struct {
	Name string
	Kind Kind
	Dim  int

	Plain  Scalar[num.Float]
	First  Scalar[dual.Scalar]
	Second Scalar[dual.Scalar2]

	PlainVec Vector[num.Float]
	FirstVec Vector[dual.Scalar]
}

// EvalPlain evaluates the plain instantiation at a bare point.
func (e *Entry) EvalPlain(x []float64) float64 {
	return float64(e.Plain(floats(x)))
}

// EvalPlainVec evaluates the plain vector instantiation at a bare point.
func (e *Entry) EvalPlainVec(x []float64) []float64 {
	v := e.PlainVec(floats(x))
	out := make([]float64, v.Len())
	for i := range v {
		out[i] = float64(v[i])
	}
	return out
}

func floats(x []float64) tensor.Vec[num.Float] {
	v := make(tensor.Vec[num.Float], len(x))
	for i, f := range x {
		v[i] = num.Float(f)
	}
	return v
}

type Registry struct {
	entries map[string]*Entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]*Entry)}

	r.add(&Entry{
		Name: "poly", Kind: ScalarKind, Dim: 2,
		Plain:  Poly[num.Float],
		First:  Poly[dual.Scalar],
		Second: Poly[dual.Scalar2],
	})
	r.add(&Entry{
		Name: "trig", Kind: ScalarKind, Dim: 2,
		Plain:  TrigProduct[num.Float],
		First:  TrigProduct[dual.Scalar],
		Second: TrigProduct[dual.Scalar2],
	})
	r.add(&Entry{
		Name: "gaussian", Kind: ScalarKind, Dim: 2,
		Plain:  Gaussian[num.Float],
		First:  Gaussian[dual.Scalar],
		Second: Gaussian[dual.Scalar2],
	})
	r.add(&Entry{
		Name: "radial", Kind: VectorKind, Dim: 2,
		PlainVec: Radial[num.Float],
		FirstVec: Radial[dual.Scalar],
	})
	r.add(&Entry{
		Name: "swirl", Kind: VectorKind, Dim: 2,
		PlainVec: Swirl[num.Float],
		FirstVec: Swirl[dual.Scalar],
	})
	r.add(&Entry{
		Name: "trig_flow", Kind: VectorKind, Dim: 2,
		PlainVec: TrigFlow[num.Float],
		FirstVec: TrigFlow[dual.Scalar],
	})

	return r
}

func (r *Registry) add(e *Entry) {
	r.entries[e.Name] = e
}

func (r *Registry) Get(name string) (*Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}
	return e, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
