package deltae

import "math"

// The four difference formulas. Each is a pure function of two Lab values;
// angles are kept in degrees and converted at the trig calls.

// deltaE1976 is the Euclidean distance in Lab space.
func deltaE1976(lab1, lab2 LabValue) float64 {
	dl := lab1.L - lab2.L
	da := lab1.A - lab2.A
	db := lab1.B - lab2.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// deltaE1994 decomposes the distance into lightness, chroma and hue terms.
// Graphics and textile weightings differ in KL and the K1/K2 constants.
//
// The chroma used in the SC/SH weights is the geometric mean of the two
// chromas, which keeps the metric symmetric under argument swap.
func deltaE1994(lab1, lab2 LabValue, textile bool) float64 {
	kl, k1, k2 := 1.0, 0.045, 0.015
	if textile {
		kl, k1, k2 = 2.0, 0.048, 0.014
	}

	dl := lab1.L - lab2.L
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	dc := c1 - c2

	da := lab1.A - lab2.A
	db := lab1.B - lab2.B
	// rounding can push the decomposition slightly negative
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	c := math.Sqrt(c1 * c2)
	sc := 1.0 + k1*c
	sh := 1.0 + k2*c

	lTerm := dl / kl
	cTerm := dc / sc
	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + dh2/(sh*sh))
}

// deltaE2000 implements CIEDE2000 with the parametric weighting factors at
// unity (kL = kC = kH = 1), including the a' adjustment that compensates
// the blue-region discontinuity near neutral gray and the RT rotation term.
func deltaE2000(lab1, lab2 LabValue) float64 {
	const pow25To7 = 6103515625.0 // 25^7

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cAvg := (c1 + c2) / 2.0

	g := 0.5 * (1.0 - math.Sqrt(math.Pow(cAvg, 7)/(math.Pow(cAvg, 7)+pow25To7)))
	a1 := lab1.A * (1.0 + g)
	a2 := lab2.A * (1.0 + g)

	c1Prime := math.Hypot(a1, lab1.B)
	c2Prime := math.Hypot(a2, lab2.B)
	h1Prime := hueDegrees(a1, lab1.B)
	h2Prime := hueDegrees(a2, lab2.B)

	dl := lab2.L - lab1.L
	dc := c2Prime - c1Prime

	var dh float64
	if c1Prime*c2Prime != 0 {
		dh = h2Prime - h1Prime
		// wrap the signed difference into (-180, 180]
		if dh > 180.0 {
			dh -= 360.0
		} else if dh < -180.0 {
			dh += 360.0
		}
	}
	dhPrime := 2.0 * math.Sqrt(c1Prime*c2Prime) * math.Sin(radians(dh)/2.0)

	lAvg := (lab1.L + lab2.L) / 2.0
	cPrimeAvg := (c1Prime + c2Prime) / 2.0

	// mean hue must handle wraparound when the angles straddle 0/360
	hAvg := h1Prime + h2Prime
	if c1Prime*c2Prime != 0 {
		switch {
		case math.Abs(h1Prime-h2Prime) <= 180.0:
			hAvg = (h1Prime + h2Prime) / 2.0
		case h1Prime+h2Prime < 360.0:
			hAvg = (h1Prime + h2Prime + 360.0) / 2.0
		default:
			hAvg = (h1Prime + h2Prime - 360.0) / 2.0
		}
	}

	t := 1.0 -
		0.17*math.Cos(radians(hAvg-30.0)) +
		0.24*math.Cos(radians(2.0*hAvg)) +
		0.32*math.Cos(radians(3.0*hAvg+6.0)) -
		0.20*math.Cos(radians(4.0*hAvg-63.0))

	dTheta := 30.0 * math.Exp(-sq((hAvg-275.0)/25.0))
	rc := 2.0 * math.Sqrt(math.Pow(cPrimeAvg, 7)/(math.Pow(cPrimeAvg, 7)+pow25To7))
	rt := -math.Sin(radians(2.0*dTheta)) * rc

	sl := 1.0 + 0.015*sq(lAvg-50.0)/math.Sqrt(20.0+sq(lAvg-50.0))
	sc := 1.0 + 0.045*cPrimeAvg
	sh := 1.0 + 0.015*cPrimeAvg*t

	return math.Sqrt(
		sq(dl/sl) + sq(dc/sc) + sq(dhPrime/sh) + rt*(dc/sc)*(dhPrime/sh),
	)
}

// deltaECMC is the CMC l:c formula. The first argument is the reference
// color: its lightness, chroma and hue drive the weighting functions, so
// the distance is intentionally not symmetric under argument swap.
func deltaECMC(ref, sample LabValue, tl, tc float64) float64 {
	dl := ref.L - sample.L
	c1 := math.Hypot(ref.A, ref.B)
	c2 := math.Hypot(sample.A, sample.B)
	dc := c1 - c2

	da := ref.A - sample.A
	db := ref.B - sample.B
	dh2 := math.Max(da*da+db*db-dc*dc, 0)

	sl := 0.511
	if ref.L >= 16.0 {
		sl = 0.040975 * ref.L / (1.0 + 0.01765*ref.L)
	}
	sc := 0.0638*c1/(1.0+0.0131*c1) + 0.638

	h1 := hueDegrees(ref.A, ref.B)
	var t float64
	if h1 >= 164.0 && h1 <= 345.0 {
		t = 0.56 + math.Abs(0.2*math.Cos(radians(h1+168.0)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(radians(h1+35.0)))
	}

	c1Quad := c1 * c1 * c1 * c1
	f := math.Sqrt(c1Quad / (c1Quad + 1900.0))
	sh := sc * (f*t + 1.0 - f)

	lTerm := dl / (tl * sl)
	cTerm := dc / (tc * sc)
	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + dh2/(sh*sh))
}

func sq(v float64) float64 {
	return v * v
}
