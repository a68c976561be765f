package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/deltae"
)

func TestParseColor(t *testing.T) {
	color, err := parseColor("lab", "89.73, 1.88, -6.96")
	require.NoError(t, err)
	assert.Equal(t, deltae.LabValue{L: 89.73, A: 1.88, B: -6.96}, color.Lab())

	_, err = parseColor("lch", "89.73, 7.2094, 285.1157")
	assert.NoError(t, err)
	_, err = parseColor("xyz", "0.84576, 0.8780792, 1.0353166")
	assert.NoError(t, err)

	_, err = parseColor("rgb", "1, 2, 3")
	assert.Error(t, err)
	_, err = parseColor("lab", "not a color")
	assert.ErrorIs(t, err, deltae.ErrBadFormat)
}

func TestRenderDefault(t *testing.T) {
	template = ""
	precision = 4

	de := deltae.Delta(
		deltae.LabValue{L: 89.73, A: 1.88, B: -6.96},
		deltae.LabValue{L: 95.08, A: -0.17, B: -10.81},
		deltae.DE2000,
	)
	out, err := render(de)
	require.NoError(t, err)
	assert.Equal(t, "5.3169 DE2000", out)
}

func TestRenderTemplate(t *testing.T) {
	template = "method={{ method }}"

	de := deltae.Delta(deltae.LabValue{L: 50}, deltae.LabValue{L: 50}, deltae.DE2000)
	out, err := render(de)
	require.NoError(t, err)
	assert.Equal(t, "method=DE2000", out)

	template = "{{ broken"
	_, err = render(de)
	assert.Error(t, err)

	template = ""
}
