package deltae

import (
	"fmt"

	"github.com/mmuldo/deltae/illuminant"
	"github.com/mmuldo/deltae/matrix"
)

// Adaptation is a chromatic adaptation method, defined by a fixed cone
// response matrix and its inverse.
//
// Cone response data from Bruce Lindbloom:
// http://www.brucelindbloom.com/Eqn_ChromAdapt.html
type Adaptation struct {
	name string
	m    matrix.Matrix3x3
	mInv matrix.Matrix3x3
}

var (
	// XyzScaling scales the tristimulus values directly (identity cone
	// matrix). Fast and crude.
	XyzScaling = Adaptation{"XYZScaling", matrix.Identity, matrix.Identity}

	// Bradford is the cone response transform used by ICC profiles.
	Bradford = Adaptation{
		"Bradford",
		matrix.Matrix3x3{
			0.8951000, 0.2664000, -0.1614000,
			-0.7502000, 1.7135000, 0.0367000,
			0.0389000, -0.0685000, 1.0296000,
		},
		matrix.Matrix3x3{
			0.9869929, -0.1470543, 0.1599627,
			0.4323053, 0.5183603, 0.0492912,
			-0.0085287, 0.0400428, 0.9684867,
		},
	}

	// VonKries is the classic von Kries cone response transform.
	VonKries = Adaptation{
		"VonKries",
		matrix.Matrix3x3{
			0.4002400, 0.7076000, -0.0808100,
			-0.2263000, 1.1653200, 0.0457000,
			0.0000000, 0.0000000, 0.9182200,
		},
		matrix.Matrix3x3{
			1.8599364, -1.1293816, 0.2198974,
			0.3611914, 0.6388125, -0.0000064,
			0.0000000, 0.0000000, 1.0890636,
		},
	}
)

// Matrix returns the method's cone response matrix.
func (a Adaptation) Matrix() matrix.Matrix3x3 { return a.m }

// InverseMatrix returns the inverse of the method's cone response matrix.
func (a Adaptation) InverseMatrix() matrix.Matrix3x3 { return a.mInv }

func (a Adaptation) String() string { return a.name }

// Adapt transforms an XYZ value from the source illuminant's white point
// to the destination illuminant's white point, preserving perceived color
// appearance:
//
//	adapted = Minv · diag(ρd/ρs, γd/γs, βd/βs) · M · xyz
//
// where (ρ, γ, β) are the cone responses of the source and destination
// white points under the method's matrix M.
//
// When the two illuminants share a white point the input is returned
// unchanged, avoiding a floating-point round trip that would only lose
// precision. An illuminant whose cone response has a zero component cannot
// be adapted from; that returns ErrOutOfBounds rather than a silent NaN.
func Adapt(xyz XyzValue, src, dst illuminant.Illuminant, method Adaptation) (XyzValue, error) {
	if src.Equal(dst) {
		return xyz, nil
	}

	s := src.ConeResponse(method.m)
	d := dst.ConeResponse(method.m)
	for i := range s {
		if s[i] == 0 {
			return XyzValue{}, fmt.Errorf(
				"%w: illuminant %v has a zero cone response under %v",
				ErrOutOfBounds, src, method,
			)
		}
	}

	scale := matrix.Matrix3x3{
		d[0] / s[0], 0, 0,
		0, d[1] / s[1], 0,
		0, 0, d[2] / s[2],
	}
	transform := method.mInv.Mul(scale).Mul(method.m)
	v := transform.MulVec(matrix.Matrix3x1{xyz.X, xyz.Y, xyz.Z})
	return XyzValue{X: v[0], Y: v[1], Z: v[2]}, nil
}
