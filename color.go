package deltae

import (
	"fmt"
	"math"
)

// Color is any value that can express itself in CIE Lab space. Every color
// type in this package implements it, which is what gives them all Delta
// and DeltaEq behavior without per-type duplication.
type Color interface {
	Lab() LabValue
}

// MaxChroma is the largest chroma an LchValue can carry, the polar radius
// of the Lab (a, b) plane corners.
var MaxChroma = math.Sqrt(2) * 128

// LabValue is a CIE L*a*b* color.
//
//	L: 0 (dark) to 100 (light)
//	a: -128 (green) to 128 (magenta)
//	b: -128 (blue) to 128 (yellow)
type LabValue struct {
	L, A, B float64
}

// NewLab returns a validated LabValue, or ErrOutOfBounds if any component
// is outside its range.
func NewLab(l, a, b float64) (LabValue, error) {
	lab := LabValue{l, a, b}
	if l < 0 || l > 100 ||
		a < -128 || a > 128 ||
		b < -128 || b > 128 {
		return LabValue{}, fmt.Errorf("%w: %v", ErrOutOfBounds, lab)
	}
	return lab, nil
}

// Lab returns the value itself, satisfying the Color interface.
func (lab LabValue) Lab() LabValue { return lab }

// Format renders the value as "[L:.., a:.., b:..]", honoring an optional
// precision specifier ("%.4v").
func (lab LabValue) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "[L:%.*f, a:%.*f, b:%.*f]", p, lab.L, p, lab.A, p, lab.B)
		return
	}
	fmt.Fprintf(f, "[L:%v, a:%v, b:%v]", lab.L, lab.A, lab.B)
}

// LchValue is the polar form of Lab: lightness, chroma and hue angle.
//
//	L: 0 to 100
//	C: 0 to MaxChroma
//	H: 0 to 360 degrees
type LchValue struct {
	L, C, H float64
}

// NewLch returns a validated LchValue, or ErrOutOfBounds if any component
// is outside its range.
func NewLch(l, c, h float64) (LchValue, error) {
	lch := LchValue{l, c, h}
	if l < 0 || l > 100 ||
		c < 0 || c > MaxChroma ||
		h < 0 || h > 360 {
		return LchValue{}, fmt.Errorf("%w: %v", ErrOutOfBounds, lch)
	}
	return lch, nil
}

// HueRadians returns the hue angle in radians rather than degrees.
func (lch LchValue) HueRadians() float64 {
	return radians(lch.H)
}

func (lch LchValue) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "[L:%.*f, c:%.*f, h:%.*f]", p, lch.L, p, lch.C, p, lch.H)
		return
	}
	fmt.Fprintf(f, "[L:%v, c:%v, h:%v]", lch.L, lch.C, lch.H)
}

// XyzValue is a CIE tristimulus value. Its meaning is incomplete without a
// reference illuminant: components are unbounded above, scaled to the
// illuminant's white point. Conversions in this package anchor to D50
// unless an illuminant is passed explicitly.
type XyzValue struct {
	X, Y, Z float64
}

// NewXyz returns a validated XyzValue. Components must be finite and
// non-negative; there is no upper bound.
func NewXyz(x, y, z float64) (XyzValue, error) {
	xyz := XyzValue{x, y, z}
	if !(x >= 0) || !(y >= 0) || !(z >= 0) ||
		math.IsInf(x, 1) || math.IsInf(y, 1) || math.IsInf(z, 1) {
		return XyzValue{}, fmt.Errorf("%w: %v", ErrOutOfBounds, xyz)
	}
	return xyz, nil
}

func (xyz XyzValue) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "[X:%.*f, Y:%.*f, Z:%.*f]", p, xyz.X, p, xyz.Y, p, xyz.Z)
		return
	}
	fmt.Fprintf(f, "[X:%v, Y:%v, Z:%v]", xyz.X, xyz.Y, xyz.Z)
}

// RgbValue is an 8-bit device RGB color. Converting to or from XYZ
// requires a named RgbSystem fixing the working-space matrix and its
// reference illuminant.
type RgbValue struct {
	R, G, B uint8
}

// Invert returns the color with every channel flipped.
func (rgb RgbValue) Invert() RgbValue {
	return RgbValue{
		R: 255 - rgb.R,
		G: 255 - rgb.G,
		B: 255 - rgb.B,
	}
}

func (rgb RgbValue) String() string {
	return fmt.Sprintf("[R:%d, G:%d, B:%d]", rgb.R, rgb.G, rgb.B)
}
