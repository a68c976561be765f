package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testMatrix = Matrix3x3{
	0.0, 1.1, 2.2,
	3.3, 4.4, 5.5,
	6.6, 7.7, 8.8,
}

func TestAt(t *testing.T) {
	assert.Equal(t, 0.0, testMatrix.At(0))
	assert.Equal(t, 4.4, testMatrix.At(4))
	assert.Equal(t, 8.8, testMatrix.At(8))
}

func TestAtColRow(t *testing.T) {
	assert.Equal(t, 0.0, testMatrix.AtColRow(0, 0))
	assert.Equal(t, 4.4, testMatrix.AtColRow(1, 1))
	assert.Equal(t, 5.5, testMatrix.AtColRow(2, 1))
	assert.Equal(t, 7.7, testMatrix.AtColRow(1, 2))
	assert.Equal(t, 8.8, testMatrix.AtColRow(2, 2))
}

func TestIndexPanics(t *testing.T) {
	assert.Panics(t, func() { testMatrix.At(9) })
	assert.Panics(t, func() { testMatrix.At(-1) })
	assert.Panics(t, func() { testMatrix.AtColRow(3, 0) })
	assert.Panics(t, func() { testMatrix.AtColRow(0, 3) })
	assert.Panics(t, func() { testMatrix.AtColRow(3, 3) })
	assert.Panics(t, func() { testMatrix.Row(3) })
	assert.Panics(t, func() { Matrix3x1{}.At(3) })
}

func TestRow(t *testing.T) {
	assert.Equal(t, Matrix3x1{0.0, 1.1, 2.2}, testMatrix.Row(0))
	assert.Equal(t, Matrix3x1{6.6, 7.7, 8.8}, testMatrix.Row(2))
}

func TestMulIdentity(t *testing.T) {
	assert.Equal(t, testMatrix, Identity.Mul(testMatrix))
	assert.Equal(t, testMatrix, testMatrix.Mul(Identity))
}

func TestMul(t *testing.T) {
	a := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	b := Matrix3x3{
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	}
	want := Matrix3x3{
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	}
	assert.Equal(t, want, a.Mul(b))
}

func TestMulVec(t *testing.T) {
	a := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	v := Matrix3x1{1, 0, -1}
	assert.Equal(t, Matrix3x1{-2, -2, -2}, a.MulVec(v))
	assert.Equal(t, v, Identity.MulVec(v))
}

func TestPow(t *testing.T) {
	m := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := Matrix3x3{
		1, 4, 9,
		16, 25, 36,
		49, 64, 81,
	}
	assert.Equal(t, want, m.Pow(2))
	assert.Equal(t, Matrix3x1{1, 4, 9}, Matrix3x1{1, 2, 3}.Pow(2))
}

func TestPowPropagatesNaN(t *testing.T) {
	// negative base with a non-integer exponent must stay NaN
	m := Matrix3x3{-8, 1, 1, 1, 1, 1, 1, 1, 1}.Pow(0.5)
	assert.True(t, math.IsNaN(m.At(0)))
	assert.Equal(t, 1.0, m.At(1))

	v := Matrix3x1{-2, 4, 9}.Pow(0.5)
	assert.True(t, math.IsNaN(v.At(0)))
	assert.Equal(t, 2.0, v.At(1))
}
