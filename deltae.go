// Package deltae calculates Delta E (perceptual color difference) between
// two colors in CIE Lab space, along with the color-space conversions and
// chromatic adaptation transforms the difference formulas require.
//
// Everything operates on immutable value types and pure functions, so all
// of the package is safe for concurrent use without synchronization.
//
//	lab0, err := deltae.ParseLab("89.73, 1.88, -6.96")
//	lab1, err := deltae.NewLab(95.08, -0.17, -10.81)
//	de := deltae.Delta(lab0, lab1, deltae.DE2000)
//	fmt.Printf("%.4v\n", de) // 5.3169 DE2000
package deltae

import "fmt"

type methodKind int

const (
	de2000 methodKind = iota
	de1976
	de1994g
	de1994t
	decmc
)

// DEMethod selects a color difference formula. Methods are comparable
// values; DECMC carries its lightness and chroma tolerance weights, so
// DECMC(2, 1) == DECMC(2, 1) but DECMC(2, 1) != DECMC(1, 1).
type DEMethod struct {
	kind   methodKind
	tl, tc float64
}

var (
	// DE2000 is the CIEDE2000 formula, the default method.
	DE2000 = DEMethod{kind: de2000}
	// DE1976 is the original Delta E, a Euclidean distance in Lab space.
	DE1976 = DEMethod{kind: de1976}
	// DE1994G is the CIE94 formula weighted for graphic arts.
	DE1994G = DEMethod{kind: de1994g}
	// DE1994T is the CIE94 formula weighted for textiles.
	DE1994T = DEMethod{kind: de1994t}
	// DECMC1 is CMC(1:1), the commonly used perceptibility weighting.
	DECMC1 = DECMC(1, 1)
	// DECMC2 is CMC(2:1), the commonly used acceptability weighting.
	DECMC2 = DECMC(2, 1)
)

// DECMC returns the CMC l:c method with the given lightness and chroma
// tolerance weights.
func DECMC(tl, tc float64) DEMethod {
	return DEMethod{kind: decmc, tl: tl, tc: tc}
}

func (m DEMethod) String() string {
	return fmt.Sprint(m)
}

// Format renders the method name, honoring an optional precision specifier
// on the DECMC weights ("%.4v" -> "DECMC(1.0000:1.0000)").
func (m DEMethod) Format(f fmt.State, verb rune) {
	switch m.kind {
	case de2000:
		fmt.Fprint(f, "DE2000")
	case de1976:
		fmt.Fprint(f, "DE1976")
	case de1994g:
		fmt.Fprint(f, "DE1994")
	case de1994t:
		fmt.Fprint(f, "DE1994T")
	case decmc:
		if p, ok := f.Precision(); ok {
			fmt.Fprintf(f, "DECMC(%.*f:%.*f)", p, m.tl, p, m.tc)
		} else {
			fmt.Fprintf(f, "DECMC(%v:%v)", m.tl, m.tc)
		}
	default:
		panic(fmt.Sprintf("deltae: unknown method kind %d", m.kind))
	}
}

// DeltaE is the measured difference between two colors. A larger value
// means a more perceptually distinct pair.
//
// Ordering is defined by the value alone: a DE2000 of 1.0 is not the same
// amount of color difference as a DE1976 of 1.0, so only compare results
// computed with the same method.
type DeltaE struct {
	method DEMethod
	value  float64
}

// Delta computes the difference between two colors under the given method.
// Both colors are reduced to Lab before the formula is applied, so any two
// Color implementations can be compared directly.
func Delta(a, b Color, method DEMethod) DeltaE {
	return DeltaE{
		method: method,
		value:  method.delta(a.Lab(), b.Lab()),
	}
}

// delta dispatches to the formula for the method. The formulas are total
// over valid Lab inputs; bad values are rejected at construction, never
// here.
func (m DEMethod) delta(a, b LabValue) float64 {
	switch m.kind {
	case de2000:
		return deltaE2000(a, b)
	case de1976:
		return deltaE1976(a, b)
	case de1994g:
		return deltaE1994(a, b, false)
	case de1994t:
		return deltaE1994(a, b, true)
	case decmc:
		return deltaECMC(a, b, m.tl, m.tc)
	}
	panic(fmt.Sprintf("deltae: unknown method kind %d", m.kind))
}

// Method returns the method the value was calculated with.
func (de DeltaE) Method() DEMethod {
	return de.method
}

// Value returns the numerical value of the difference.
func (de DeltaE) Value() float64 {
	return de.value
}

func (de DeltaE) String() string {
	return fmt.Sprint(de)
}

// Format renders the result as "<value> <method>", honoring an optional
// precision specifier ("%.4v" -> "1.0000 DE2000").
func (de DeltaE) Format(f fmt.State, verb rune) {
	if p, ok := f.Precision(); ok {
		fmt.Fprintf(f, "%.*f %.*v", p, de.value, p, de.method)
		return
	}
	fmt.Fprintf(f, "%v %v", de.value, de.method)
}
