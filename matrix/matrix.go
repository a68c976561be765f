// Package matrix provides the fixed-size 3x3 and 3x1 matrices used by the
// color conversion and chromatic adaptation pipelines.
//
// Matrix3x3 is stored row-major. Every constant table in this module (RGB
// working space matrices, cone response matrices) uses the same layout, so
// a matrix-vector product is always "row dot vector".
package matrix

import (
	"fmt"
	"math"
)

// Matrix3x3 is a 3x3 matrix of floats, stored row-major.
type Matrix3x3 [9]float64

// Matrix3x1 is a column vector of 3 floats.
type Matrix3x1 [3]float64

// Identity is the 3x3 identity matrix.
var Identity = Matrix3x3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// At returns the entry at linear position i (0..8). An index outside the
// fixed range is a programmer error and panics.
func (m Matrix3x3) At(i int) float64 {
	if i < 0 || i > 8 {
		panic(fmt.Sprintf("matrix: index out of bounds: the length is 9, but the index is %d", i))
	}
	return m[i]
}

// AtColRow returns the entry in the given column and row (each 0..2).
// An index outside the fixed range is a programmer error and panics.
func (m Matrix3x3) AtColRow(col, row int) float64 {
	if col < 0 || col > 2 {
		panic(fmt.Sprintf("matrix: index out of bounds: the width is 3, but the column index is %d", col))
	}
	if row < 0 || row > 2 {
		panic(fmt.Sprintf("matrix: index out of bounds: the height is 3, but the row index is %d", row))
	}
	return m[row*3+col]
}

// Row returns row r as a vector.
func (m Matrix3x3) Row(r int) Matrix3x1 {
	if r < 0 || r > 2 {
		panic(fmt.Sprintf("matrix: index out of bounds: the height is 3, but the row index is %d", r))
	}
	return Matrix3x1{m[r*3], m[r*3+1], m[r*3+2]}
}

// Mul returns the standard matrix product m*n.
func (m Matrix3x3) Mul(n Matrix3x3) Matrix3x3 {
	var p Matrix3x3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			p[row*3+col] = m[row*3]*n[col] + m[row*3+1]*n[3+col] + m[row*3+2]*n[6+col]
		}
	}
	return p
}

// MulVec applies m to the column vector v.
func (m Matrix3x3) MulVec(v Matrix3x1) Matrix3x1 {
	return Matrix3x1{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Pow raises every entry to the given exponent. A negative entry with a
// non-integer exponent yields NaN, which is propagated rather than masked.
func (m Matrix3x3) Pow(exp float64) Matrix3x3 {
	var p Matrix3x3
	for i, val := range m {
		p[i] = math.Pow(val, exp)
	}
	return p
}

// At returns the entry at position i (0..2). An index outside the fixed
// range is a programmer error and panics.
func (v Matrix3x1) At(i int) float64 {
	if i < 0 || i > 2 {
		panic(fmt.Sprintf("matrix: index out of bounds: the length is 3, but the index is %d", i))
	}
	return v[i]
}

// Pow raises every entry to the given exponent, propagating NaN.
func (v Matrix3x1) Pow(exp float64) Matrix3x1 {
	var p Matrix3x1
	for i, val := range v {
		p[i] = math.Pow(val, exp)
	}
	return p
}
