package deltae

import (
	"github.com/mmuldo/deltae/illuminant"
	"github.com/mmuldo/deltae/matrix"
)

// RgbSystem is a named RGB reference system, typically associated with an
// ICC profile. Each system fixes a working-space matrix pair and the
// reference illuminant its XYZ values are relative to.
type RgbSystem int

const (
	// SRgb is standard RGB, developed by Microsoft and HP. The default.
	SRgb RgbSystem = iota
	// Adobe1998 is Adobe Systems' 1998 working space.
	Adobe1998
	// Apple is the Apple RGB working space.
	Apple
	// Best is like DonRGB but with a modified red coordinate.
	Best
	// Bruce is a compromise between ColorMatch and Adobe.
	Bruce
	// CIE is the Commission internationale de l'éclairage space.
	CIE
	// ColorMatch has a slightly larger gamut than sRGB, with D50.
	ColorMatch
	// Don is a wide-gamut space with the industry-standard D50 white point.
	Don
	// ECI is the European Color Initiative space.
	ECI
	// EktaSpace is Ekta Space PS 5 (EktaChrome).
	EktaSpace
	// NTSC is the analog color television encoding.
	NTSC
	// PalSecam covers the PAL and SECAM television encodings.
	PalSecam
	// ProPhoto is Kodak's large-gamut space, also known as ROMM RGB.
	ProPhoto
	// SMPTE is the Society of Motion Picture and Television Engineers space.
	SMPTE
	// WideGamut is like AdobeRGB but with a larger gamut.
	WideGamut
)

// rgbSpace holds the fixed data of one reference system. srgbCurve marks
// the only system whose companding is the nonlinear sRGB curve; the other
// systems transfer linearly.
type rgbSpace struct {
	name      string
	toXyz     matrix.Matrix3x3
	fromXyz   matrix.Matrix3x3
	white     illuminant.Illuminant
	srgbCurve bool
}

func (sys RgbSystem) space() rgbSpace {
	if sys < SRgb || int(sys) >= len(rgbSpaces) {
		panic("deltae: unknown RGB system")
	}
	return rgbSpaces[sys]
}

// Illuminant returns the reference illuminant the system's XYZ values are
// relative to.
func (sys RgbSystem) Illuminant() illuminant.Illuminant {
	return sys.space().white
}

// ToXyzMatrix returns the system's RGB-to-XYZ working-space matrix.
func (sys RgbSystem) ToXyzMatrix() matrix.Matrix3x3 {
	return sys.space().toXyz
}

// FromXyzMatrix returns the system's XYZ-to-RGB working-space matrix.
func (sys RgbSystem) FromXyzMatrix() matrix.Matrix3x3 {
	return sys.space().fromXyz
}

func (sys RgbSystem) String() string {
	return sys.space().name
}

// RgbToXyz converts a device RGB value to XYZ relative to the system's
// reference illuminant: nominalize, undo the system's companding, then
// apply the working-space matrix.
func RgbToXyz(rgb RgbValue, sys RgbSystem) XyzValue {
	space := sys.space()
	nom := rgb.Nominalize()
	lin := matrix.Matrix3x1{
		compandInv(nom.R, space.srgbCurve),
		compandInv(nom.G, space.srgbCurve),
		compandInv(nom.B, space.srgbCurve),
	}
	v := space.toXyz.MulVec(lin)
	return XyzValue{X: v[0], Y: v[1], Z: v[2]}
}

// XyzToRgb converts an XYZ value relative to the system's reference
// illuminant into device RGB. RGB is gamut-limited, so overshoot is
// clamped rather than rejected.
func XyzToRgb(xyz XyzValue, sys RgbSystem) RgbValue {
	space := sys.space()
	v := space.fromXyz.MulVec(matrix.Matrix3x1{xyz.X, xyz.Y, xyz.Z})
	nom := NewRgbNominal(
		compand(v[0], space.srgbCurve),
		compand(v[1], space.srgbCurve),
		compand(v[2], space.srgbCurve),
	)
	return nom.Denominalize()
}

// Xyz converts the value to XYZ within the given system.
func (rgb RgbValue) Xyz(sys RgbSystem) XyzValue {
	return RgbToXyz(rgb, sys)
}

// Rgb converts the value to device RGB in the given system, adapting from
// D50 to the system's reference illuminant with the Bradford method.
func (xyz XyzValue) Rgb(sys RgbSystem) RgbValue {
	adapted, err := Adapt(xyz, illuminant.D50, sys.Illuminant(), Bradford)
	if err != nil {
		// unreachable: the named illuminants have nonzero cone responses
		adapted = xyz
	}
	return XyzToRgb(adapted, sys)
}
