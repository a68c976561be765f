package illuminant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmuldo/deltae/matrix"
)

func TestWhite(t *testing.T) {
	assert.Equal(t, matrix.Matrix3x1{0.96422, 1.0, 0.82521}, D50.White())
	assert.Equal(t, matrix.Matrix3x1{1.0, 1.0, 1.0}, E.White())
}

func TestEqualIsStructural(t *testing.T) {
	// equality is defined by the white point vector, not the name
	assert.True(t, D50.Equal(Other(0.96422, 1.0, 0.82521)))
	assert.True(t, Other(0.96422, 1.0, 0.82521).Equal(D50))
	assert.True(t, D65.Equal(D65))

	assert.False(t, D50.Equal(D65))
	assert.False(t, Other(0.96422, 1.0, 0.82522).Equal(D50))
}

func TestConeResponse(t *testing.T) {
	// the identity cone matrix returns the white point itself
	assert.Equal(t, D65.White(), D65.ConeResponse(matrix.Identity))

	double := matrix.Matrix3x3{
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	}
	assert.Equal(t, matrix.Matrix3x1{2, 2, 2}, E.ConeResponse(double))
}

func TestString(t *testing.T) {
	assert.Equal(t, "D50", D50.String())
	assert.Equal(t, "Other", Other(1, 1, 1).String())
}
