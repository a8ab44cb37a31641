package num

import "math"

// Float is the base scalar of the algebra. It is a defined type rather
// than a bare float64 so that the Number method set can attach to it
// and so that accidental mixing with untyped numeric code requires an
// explicit conversion.
type Float float64

var _ Number[Float] = Float(0)

func (f Float) Add(g Float) Float  { return f + g }
func (f Float) Sub(g Float) Float  { return f - g }
func (f Float) Mul(g Float) Float  { return f * g }
func (f Float) Div(g Float) Float  { return f / g }
func (f Float) Neg() Float         { return -f }
func (f Float) Scale(c float64) Float { return f * Float(c) }
func (f Float) Shift(c float64) Float { return f + Float(c) }

func (Float) Zero() Float { return 0 }
func (Float) One() Float  { return 1 }

func (f Float) Sin() Float  { return Float(math.Sin(float64(f))) }
func (f Float) Cos() Float  { return Float(math.Cos(float64(f))) }
func (f Float) Tan() Float  { return Float(math.Tan(float64(f))) }
func (f Float) Exp() Float  { return Float(math.Exp(float64(f))) }
func (f Float) Log() Float  { return Float(math.Log(float64(f))) }
func (f Float) Sqrt() Float { return Float(math.Sqrt(float64(f))) }

func (f Float) Pow(g Float) Float { return Float(math.Pow(float64(f), float64(g))) }

func (f Float) PowConst(p float64) Float { return Float(math.Pow(float64(f), p)) }

func (f Float) Real() float64 { return float64(f) }
