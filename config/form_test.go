package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/grapher"
)

func TestParseCount(t *testing.T) {
	valid := map[string]int{
		"1":    1,
		" 12 ": 12,
		"08":   8,
	}
	for in, want := range valid {
		got, err := ParseCount("curves", in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "0", "-4", "two", "1.5"} {
		_, err := ParseCount("curves", in)
		assert.ErrorIs(t, err, grapher.ErrValidation, in)
	}

	_, err := ParseCount("points", "x")
	assert.ErrorContains(t, err, "points")
}

func TestParsePositive(t *testing.T) {
	got, err := ParsePositive("X max", " 2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = ParsePositive("X max", "1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	for _, in := range []string{"", "0", "-1", "ten", "NaN", "+Inf", "1e999"} {
		_, err := ParsePositive("X max", in)
		assert.ErrorIs(t, err, grapher.ErrValidation, in)
	}
}

func TestChartForm(t *testing.T) {
	p := grapher.DefaultChartParams()
	form := FormOf(p)
	assert.Equal(t, "10", form.XMax)
	assert.Equal(t, "1", form.GridStepY)

	got, err := form.Params()
	require.NoError(t, err)
	assert.Equal(t, p, got)

	form.XLabel = "Time"
	form.YMax = "0.5"
	form.GridStepY = "0.1"
	form.Grid = false
	got, err = form.Params()
	require.NoError(t, err)
	assert.Equal(t, grapher.ChartParams{
		XLabel: "Time", YLabel: "Y",
		XMax: 10, YMax: 0.5,
		GridStepX: 1, GridStepY: 0.1,
	}, got)

	form.GridStepX = "abc"
	_, err = form.Params()
	assert.ErrorIs(t, err, grapher.ErrValidation)
	assert.ErrorContains(t, err, "X grid step")

	form = FormOf(p)
	form.GridStepX = "0.001"
	_, err = form.Params()
	assert.ErrorIs(t, err, grapher.ErrValidation)
}
