package deltae

import (
	"math"

	"github.com/mmuldo/deltae/illuminant"
)

// CIE Lab constants. The exact rationals avoid the truncated 903.3/0.008856
// values that make the piecewise branches disagree near the threshold.
const (
	kappa       = 24389.0 / 27.0
	epsilon     = 216.0 / 24389.0
	cbrtEpsilon = 0.20689655172413796
)

// Lch returns the polar form of the value: c is the radius of (a, b) and
// h is the atan2 angle in degrees, normalized into [0, 360).
func (lab LabValue) Lch() LchValue {
	return LchValue{
		L: lab.L,
		C: math.Hypot(lab.A, lab.B),
		H: hueDegrees(lab.A, lab.B),
	}
}

// Lab returns the rectangular form of the value.
func (lch LchValue) Lab() LabValue {
	return LabValue{
		L: lch.L,
		A: lch.C * math.Cos(lch.HueRadians()),
		B: lch.C * math.Sin(lch.HueRadians()),
	}
}

// Xyz converts the value to XYZ relative to the D50 illuminant.
func (lab LabValue) Xyz() XyzValue {
	return LabToXyz(lab, illuminant.D50)
}

// Xyz converts the value to XYZ relative to the D50 illuminant.
func (lch LchValue) Xyz() XyzValue {
	return lch.Lab().Xyz()
}

// Lab converts the value to Lab, treating it as relative to D50.
func (xyz XyzValue) Lab() LabValue {
	return XyzToLab(xyz, illuminant.D50)
}

// Lch converts the value to Lch, treating it as relative to D50.
func (xyz XyzValue) Lch() LchValue {
	return xyz.Lab().Lch()
}

// Lab converts the value to Lab relative to D50, reading the channels as
// sRGB and adapting from the sRGB illuminant with the Bradford method.
func (rgb RgbValue) Lab() LabValue {
	xyz := RgbToXyz(rgb, SRgb)
	adapted, err := Adapt(xyz, SRgb.Illuminant(), illuminant.D50, Bradford)
	if err != nil {
		// unreachable: the named illuminants have nonzero cone responses
		adapted = xyz
	}
	return XyzToLab(adapted, illuminant.D50)
}

// XyzToLab converts an XYZ value to Lab relative to the given illuminant,
// using the standard CIE piecewise cube-root/linear map per channel.
func XyzToLab(xyz XyzValue, ill illuminant.Illuminant) LabValue {
	white := ill.White()
	fx := labMap(xyz.X / white[0])
	fy := labMap(xyz.Y / white[1])
	fz := labMap(xyz.Z / white[2])

	return LabValue{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToXyz converts a Lab value to XYZ scaled to the given illuminant's
// white point, inverting the piecewise map with the same thresholds.
func LabToXyz(lab LabValue, ill illuminant.Illuminant) XyzValue {
	fy := (lab.L + 16.0) / 116.0
	fx := lab.A/500.0 + fy
	fz := fy - lab.B/200.0

	xr := labUnmap(fx)
	zr := labUnmap(fz)
	yr := fy * fy * fy
	if lab.L <= epsilon*kappa {
		yr = lab.L / kappa
	}

	white := ill.White()
	return XyzValue{
		X: xr * white[0],
		Y: yr * white[1],
		Z: zr * white[2],
	}
}

func labMap(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16.0) / 116.0
}

func labUnmap(f float64) float64 {
	if f > cbrtEpsilon {
		return f * f * f
	}
	return (116.0*f - 16.0) / kappa
}

// hueDegrees returns the atan2 angle of (a, b) in degrees, shifted into
// [0, 360) by adding 360 when negative.
func hueDegrees(a, b float64) float64 {
	h := degrees(math.Atan2(b, a))
	if h < 0 {
		h += 360.0
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
