// Package illuminant defines the standard illuminant white points that
// anchor XYZ conversions and chromatic adaptation.
//
// White point data from Bruce Lindbloom:
// http://www.brucelindbloom.com/Eqn_RGB_XYZ_Matrix.html
package illuminant

import "github.com/mmuldo/deltae/matrix"

// Illuminant is a reference light source described by its white point
// tristimulus values. Two illuminants are equal when their white points
// are equal, regardless of name.
type Illuminant struct {
	name  string
	white matrix.Matrix3x1
}

var (
	// A is tungsten-filament (incandescent)
	A = Illuminant{"A", matrix.Matrix3x1{1.09850, 1.00000, 0.35585}}
	// B is daylight simulation at noon (4874°K)
	B = Illuminant{"B", matrix.Matrix3x1{0.99072, 1.00000, 0.85223}}
	// C is daylight simulation average (6774°K)
	C = Illuminant{"C", matrix.Matrix3x1{0.98074, 1.00000, 1.18232}}
	// D50 is natural daylight at horizon (5003°K)
	D50 = Illuminant{"D50", matrix.Matrix3x1{0.96422, 1.00000, 0.82521}}
	// D55 is natural daylight at mid-morning (5503°K)
	D55 = Illuminant{"D55", matrix.Matrix3x1{0.95682, 1.00000, 0.92149}}
	// D65 is natural daylight at noon (6504°K)
	D65 = Illuminant{"D65", matrix.Matrix3x1{0.95047, 1.00000, 1.08883}}
	// D75 is natural daylight in north sky (7504°K)
	D75 = Illuminant{"D75", matrix.Matrix3x1{0.94972, 1.00000, 1.22638}}
	// E is an equal energy radiator (constant spectral distribution)
	E = Illuminant{"E", matrix.Matrix3x1{1.00000, 1.00000, 1.00000}}
	// F2 is fluorescent (standard)
	F2 = Illuminant{"F2", matrix.Matrix3x1{0.99186, 1.00000, 0.67393}}
	// F7 is fluorescent (broadband)
	F7 = Illuminant{"F7", matrix.Matrix3x1{0.95041, 1.00000, 1.08747}}
	// F11 is fluorescent (narrowband)
	F11 = Illuminant{"F11", matrix.Matrix3x1{1.00962, 1.00000, 0.64350}}
)

// Other builds an illuminant with an arbitrary white point.
func Other(x, y, z float64) Illuminant {
	return Illuminant{"Other", matrix.Matrix3x1{x, y, z}}
}

// White returns the illuminant's white point tristimulus values.
func (i Illuminant) White() matrix.Matrix3x1 {
	return i.white
}

// Equal reports whether two illuminants share the same white point.
// A named illuminant and an Other with identical values are equal.
func (i Illuminant) Equal(other Illuminant) bool {
	return i.white == other.white
}

// ConeResponse returns the illuminant's cone response domain under a 3x3
// chromatic adaptation matrix.
func (i Illuminant) ConeResponse(m matrix.Matrix3x3) matrix.Matrix3x1 {
	return m.MulVec(i.white)
}

func (i Illuminant) String() string {
	return i.name
}
