package deltae

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmuldo/deltae/illuminant"
)

var roundTripLabs = []LabValue{
	{0, 0, 0},
	{100, 0, 0},
	{50, 20, 30},
	{89.73, 1.88, -6.96},
	{95.08, -0.17, -10.81},
	{5.5, -60, 60},
	{30, 128, -128},
	{75.3, -100.25, 14.7},
}

func TestLabLchRoundTrip(t *testing.T) {
	for _, lab := range roundTripLabs {
		back := lab.Lch().Lab()
		assert.InDelta(t, lab.L, back.L, 1e-4, "L of %v", lab)
		assert.InDelta(t, lab.A, back.A, 1e-4, "a of %v", lab)
		assert.InDelta(t, lab.B, back.B, 1e-4, "b of %v", lab)
	}
}

func TestLabXyzRoundTrip(t *testing.T) {
	for _, lab := range roundTripLabs {
		back := lab.Xyz().Lab()
		assert.InDelta(t, lab.L, back.L, 1e-4, "L of %v", lab)
		assert.InDelta(t, lab.A, back.A, 1e-4, "a of %v", lab)
		assert.InDelta(t, lab.B, back.B, 1e-4, "b of %v", lab)
	}
}

func TestLabToLch(t *testing.T) {
	lch := LabValue{89.73, 1.88, -6.96}.Lch()
	assert.InDelta(t, 89.73, lch.L, 1e-4)
	assert.InDelta(t, 7.20944, lch.C, 1e-4)
	assert.InDelta(t, 285.11572, lch.H, 1e-3)
}

func TestHueNormalized(t *testing.T) {
	// atan2 results below zero are shifted into [0, 360)
	for _, lab := range []LabValue{
		{50, 10, 10}, {50, -10, 10}, {50, -10, -10}, {50, 10, -10}, {50, 0, 0},
	} {
		h := lab.Lch().H
		assert.GreaterOrEqual(t, h, 0.0, "hue of %v", lab)
		assert.Less(t, h, 360.0, "hue of %v", lab)
	}
	assert.InDelta(t, 225.0, LabValue{50, -10, -10}.Lch().H, 1e-6)
	assert.InDelta(t, 315.0, LabValue{50, 10, -10}.Lch().H, 1e-6)
}

func TestLabToXyzD50(t *testing.T) {
	xyz := LabValue{95.08, -0.17, -10.81}.Xyz()
	assert.InDelta(t, 0.84576, xyz.X, 1e-4)
	assert.InDelta(t, 0.8780792, xyz.Y, 1e-4)
	assert.InDelta(t, 0.8543534, xyz.Z, 1e-4)

	// every channel carries the white point factor, Z included
	white := illuminant.D50.White()
	assert.InDelta(t, 1.0353166, xyz.Z/white[2], 1e-4)
}

func TestXyzWhitePointIsReferenceWhite(t *testing.T) {
	// the illuminant's own white point maps to L=100, a=b=0
	white := illuminant.D50.White()
	lab := XyzToLab(XyzValue{white[0], white[1], white[2]}, illuminant.D50)
	assert.InDelta(t, 100.0, lab.L, 1e-9)
	assert.InDelta(t, 0.0, lab.A, 1e-9)
	assert.InDelta(t, 0.0, lab.B, 1e-9)
}

func TestLabToXyzLinearBranch(t *testing.T) {
	// very dark colors exercise the linear segment of the piecewise map
	lab := LabValue{4.0, 1.0, -1.0}
	back := LabToXyz(lab, illuminant.D65)
	again := XyzToLab(back, illuminant.D65)
	assert.InDelta(t, lab.L, again.L, 1e-4)
	assert.InDelta(t, lab.A, again.A, 1e-4)
	assert.InDelta(t, lab.B, again.B, 1e-4)
}

func TestSrgbWhiteAndBlack(t *testing.T) {
	white := RgbToXyz(RgbValue{255, 255, 255}, SRgb)
	d65 := illuminant.D65.White()
	assert.InDelta(t, d65[0], white.X, 1e-4)
	assert.InDelta(t, d65[1], white.Y, 1e-4)
	assert.InDelta(t, d65[2], white.Z, 1e-4)

	black := RgbToXyz(RgbValue{0, 0, 0}, SRgb)
	assert.Equal(t, XyzValue{}, black)
}

func TestRgbToLab(t *testing.T) {
	// sRGB white should land on the D50 white point after adaptation
	lab := RgbValue{255, 255, 255}.Lab()
	assert.InDelta(t, 100.0, lab.L, 0.01)
	assert.InDelta(t, 0.0, lab.A, 0.05)
	assert.InDelta(t, 0.0, lab.B, 0.05)

	gray := RgbValue{128, 128, 128}.Lab()
	assert.InDelta(t, 0.0, gray.A, 0.05)
	assert.InDelta(t, 0.0, gray.B, 0.05)
	assert.Greater(t, gray.L, 50.0)
	assert.Less(t, gray.L, 57.0)
}

func TestRgbXyzRoundTrip(t *testing.T) {
	for _, sys := range []RgbSystem{SRgb, Adobe1998, ProPhoto, CIE, NTSC} {
		for _, rgb := range []RgbValue{{0, 0, 0}, {255, 255, 255}, {64, 128, 192}, {200, 10, 90}} {
			back := XyzToRgb(RgbToXyz(rgb, sys), sys)
			// denominalization rounds, so allow a single step per channel
			assert.InDelta(t, float64(rgb.R), float64(back.R), 1, "%v in %v", rgb, sys)
			assert.InDelta(t, float64(rgb.G), float64(back.G), 1, "%v in %v", rgb, sys)
			assert.InDelta(t, float64(rgb.B), float64(back.B), 1, "%v in %v", rgb, sys)
		}
	}
}

func TestXyzToRgbClampsGamut(t *testing.T) {
	// far outside any RGB gamut: channels clamp instead of failing
	rgb := XyzToRgb(XyzValue{1.5, 0.2, 0.1}, SRgb)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(0), rgb.G)
}

func TestRgbSystemData(t *testing.T) {
	assert.Equal(t, "sRGB", SRgb.String())
	assert.Equal(t, "ProPhotoRGB", ProPhoto.String())
	assert.True(t, SRgb.Illuminant().Equal(illuminant.D65))
	assert.True(t, ProPhoto.Illuminant().Equal(illuminant.D50))
	assert.True(t, CIE.Illuminant().Equal(illuminant.E))
	assert.True(t, NTSC.Illuminant().Equal(illuminant.C))
}
