package calculus_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avaldr/mms/internal/calculus"
	"github.com/avaldr/mms/internal/dual"
	"github.com/avaldr/mms/internal/num"
	"github.com/avaldr/mms/internal/tensor"
)

var _ = Describe("Gradient", func() {
	It("extracts the seeded partials of a polynomial", func() {
		// f(x,y) = 3x² + xy
		p := calculus.Coords(2, 5)
		f := p[0].Mul(p[0]).Scale(3).Add(p[0].Mul(p[1]))

		g := calculus.Gradient(f)
		Expect(float64(g[0])).To(BeNumerically("~", 17, 1e-12)) // 6x + y
		Expect(float64(g[1])).To(BeNumerically("~", 2, 1e-12))  // x
	})

	It("returns a copy, not a view", func() {
		p := calculus.Coords(1)
		g := calculus.Gradient(p[0])
		g[0] = 99
		Expect(float64(p[0].Der[0])).To(Equal(1.0))
	})
})

var _ = Describe("Divergence", func() {
	It("is exactly 2 everywhere for F = (x, y)", func() {
		for _, pt := range [][2]float64{{0, 0}, {1, 2}, {-3, 0.5}} {
			p := calculus.Coords(pt[0], pt[1])
			field := tensor.New(p[0], p[1])

			div := calculus.Divergence(field)
			Expect(float64(div)).To(Equal(2.0))
		}
	})

	It("vanishes for the solenoidal field F = (-y, x)", func() {
		p := calculus.Coords(1.3, -0.7)
		field := tensor.New(p[1].Neg(), p[0])

		Expect(float64(calculus.Divergence(field))).To(Equal(0.0))
	})

	It("matches the analytic value for a transcendental field", func() {
		// F = (sin x · cos y, exp y), div = cos x · cos y + exp y
		x, y := 0.9, -0.4
		p := calculus.Coords(x, y)
		field := tensor.New(p[0].Sin().Mul(p[1].Cos()), p[1].Exp())

		want := math.Cos(x)*math.Cos(y) + math.Exp(y)
		Expect(float64(calculus.Divergence(field))).To(BeNumerically("~", want, 1e-14))
	})
})

var _ = Describe("TensorDivergence", func() {
	It("contracts the outer index of an outer-product field", func() {
		// T = u ⊗ u with u = (x, y): T_ij = u_i u_j.
		// div(T)_j = Σ_i ∂(u_i u_j)/∂x_i = 3·(x, y)_j in 2-D.
		x, y := 1.5, -2.0
		p := calculus.Coords(x, y)
		field := tensor.Outer(tensor.New(p[0], p[1]), tensor.New(p[0], p[1]))

		div := calculus.TensorDivergence(field)
		Expect(float64(div[0])).To(BeNumerically("~", 3*x, 1e-12))
		Expect(float64(div[1])).To(BeNumerically("~", 3*y, 1e-12))
	})
})

var _ = Describe("Jacobian", func() {
	It("lays out rows as field components", func() {
		// F = (x·y, y), J = [[y, x], [0, 1]]
		p := calculus.Coords(2, 7)
		field := tensor.New(p[0].Mul(p[1]), p[1])

		j := calculus.Jacobian(field)
		Expect(float64(j[0][0])).To(Equal(7.0))
		Expect(float64(j[0][1])).To(Equal(2.0))
		Expect(float64(j[1][0])).To(Equal(0.0))
		Expect(float64(j[1][1])).To(Equal(1.0))
	})
})

var _ = Describe("Hessian", func() {
	It("recovers the analytic Hessian of x²y³", func() {
		x, y := 1.2, 0.8
		p := calculus.Coords2(x, y)
		f := p[0].Mul(p[0]).Mul(p[1].PowConst(3))

		h := calculus.Hessian(f)
		want := [2][2]float64{
			{2 * y * y * y, 6 * x * y * y},
			{6 * x * y * y, 6 * x * x * y},
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				Expect(float64(h[i][j])).To(BeNumerically("~", want[i][j], 1e-12))
			}
		}
	})

	It("is symmetric for a smooth transcendental", func() {
		p := calculus.Coords2(0.6, 1.4)
		f := p[0].Mul(p[1]).Sin().Exp()

		h := calculus.Hessian(f)
		Expect(float64(h[0][1])).To(BeNumerically("~", float64(h[1][0]), 1e-12))
	})
})

var _ = Describe("Laplacian", func() {
	It("is zero for the harmonic function x² - y²", func() {
		p := calculus.Coords2(3, -1)
		f := p[0].Mul(p[0]).Sub(p[1].Mul(p[1]))

		Expect(float64(calculus.Laplacian(f))).To(BeNumerically("~", 0, 1e-12))
	})

	It("matches -2π²·u for u = sin(πx)sin(πy)", func() {
		x, y := 0.3, 0.7
		p := calculus.Coords2(x, y)
		u := p[0].Scale(math.Pi).Sin().Mul(p[1].Scale(math.Pi).Sin())

		want := -2 * math.Pi * math.Pi * math.Sin(math.Pi*x) * math.Sin(math.Pi*y)
		Expect(float64(calculus.Laplacian(u))).To(BeNumerically("~", want, 1e-10))
	})
})

var _ = Describe("Identity tensor", func() {
	It("has ones on the diagonal at any entry type", func() {
		id := tensor.Identity(dual.Const(num.Float(0), 2), 3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				Expect(id[i][j].Real()).To(Equal(want))
				Expect(id[i][j].Der.Len()).To(Equal(2))
			}
		}
	})
})
