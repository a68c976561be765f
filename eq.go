package deltae

// Tolerance wraps a DeltaE as a threshold for "colors are
// indistinguishable" checks. Magnitude comparisons use the numeric value
// only; the caller is responsible for comparing results computed with the
// same method.
type Tolerance struct {
	de DeltaE
}

// NewTolerance builds a tolerance from a method and a threshold value.
func NewTolerance(method DEMethod, value float64) Tolerance {
	return Tolerance{de: DeltaE{method: method, value: value}}
}

// DefaultTolerance is DE2000 with a threshold of 1.0, the commonly
// accepted "just noticeable difference" cutoff.
func DefaultTolerance() Tolerance {
	return NewTolerance(DE2000, 1.0)
}

// Method returns the method deltas are computed with.
func (t Tolerance) Method() DEMethod { return t.de.method }

// Value returns the threshold value.
func (t Tolerance) Value() float64 { return t.de.value }

// DeltaEq reports whether the difference between two colors, computed
// under the tolerance's method, is within the tolerance's threshold. The
// colors may be of different representations; both are reduced to Lab.
func DeltaEq(a, b Color, tol Tolerance) bool {
	return Delta(a, b, tol.de.method).value <= tol.de.value
}
