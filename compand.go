package deltae

import "math"

// Companding relates linear light to stored channel values. Only sRGB uses
// the piecewise curve below; every other reference system in this package
// transfers linearly, so the curve is selected per system rather than
// hard-coded into the conversion.

func compandInv(val float64, srgbCurve bool) float64 {
	if !srgbCurve {
		return val
	}
	if val <= 0.04045 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

func compand(val float64, srgbCurve bool) float64 {
	if !srgbCurve {
		return val
	}
	if val <= 0.0031308 {
		return val * 12.92
	}
	return 1.055*math.Pow(val, 1.0/2.4) - 0.055
}
