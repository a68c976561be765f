package deltae

import (
	"fmt"
	"math"
)

// RgbNominalValue is an RgbValue on a 0 to 1 scale, the linearizable
// intermediate form used by the RGB working-space matrices.
type RgbNominalValue struct {
	R, G, B float64
}

// NewRgbNominal builds a nominal value from matrix math output. Components
// are clamped into [0, 1] rather than rejected, since multiplication and
// rounding can overshoot the gamut.
func NewRgbNominal(r, g, b float64) RgbNominalValue {
	return RgbNominalValue{
		R: clamp01(r),
		G: clamp01(g),
		B: clamp01(b),
	}
}

// Nominalize scales the 0..255 channels onto a 0 to 1 range.
func (rgb RgbValue) Nominalize() RgbNominalValue {
	return RgbNominalValue{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// Denominalize scales the nominal channels back to 0..255, clamping on
// overshoot.
func (nom RgbNominalValue) Denominalize() RgbValue {
	return RgbValue{
		R: uint8(math.Round(clamp01(nom.R) * 255.0)),
		G: uint8(math.Round(clamp01(nom.G) * 255.0)),
		B: uint8(math.Round(clamp01(nom.B) * 255.0)),
	}
}

func (nom RgbNominalValue) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "[R:%.*f, G:%.*f, B:%.*f]", p, nom.R, p, nom.G, p, nom.B)
		return
	}
	fmt.Fprintf(f, "[R:%v, G:%v, B:%v]", nom.R, nom.G, nom.B)
}

func clamp01(val float64) float64 {
	switch {
	case val < 0:
		return 0
	case val > 1:
		return 1
	}
	return val
}
