package deltae

import "math"

// roundTo rounds a value to a number of decimal places.
func roundTo(val float64, places int) float64 {
	mult := math.Pow(10, float64(places))
	return math.Round(val*mult) / mult
}

// Round returns the result with its value rounded to the given number of
// decimal places. Converting between representations loses a little
// accuracy; rounding to 4 places is usually more than enough to compare.
func (de DeltaE) Round(places int) DeltaE {
	de.value = roundTo(de.value, places)
	return de
}

// Round returns the value with each component rounded to the given number
// of decimal places.
func (lab LabValue) Round(places int) LabValue {
	return LabValue{
		L: roundTo(lab.L, places),
		A: roundTo(lab.A, places),
		B: roundTo(lab.B, places),
	}
}

// Round returns the value with each component rounded to the given number
// of decimal places.
func (lch LchValue) Round(places int) LchValue {
	return LchValue{
		L: roundTo(lch.L, places),
		C: roundTo(lch.C, places),
		H: roundTo(lch.H, places),
	}
}

// Round returns the value with each component rounded to the given number
// of decimal places.
func (xyz XyzValue) Round(places int) XyzValue {
	return XyzValue{
		X: roundTo(xyz.X, places),
		Y: roundTo(xyz.Y, places),
		Z: roundTo(xyz.Z, places),
	}
}
