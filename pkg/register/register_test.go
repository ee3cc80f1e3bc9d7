package register_test

import (
	"testing"

	"github.com/pitchwise/tjdelta/pkg/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonSumsStints(t *testing.T) {
	tbl := register.New()
	tbl.Add("doeja01", 2012, register.Line{G: 10, GS: 8, SV: 0, IPouts: 150, BFP: 200})
	tbl.Add("doeja01", 2012, register.Line{G: 5, GS: 0, SV: 2, IPouts: 15, BFP: 25})
	tbl.Add("doeja01", 2013, register.Line{G: 1})

	l, ok := tbl.Season("doeja01", 2012)
	require.True(t, ok)
	assert.Equal(t, register.Line{G: 15, GS: 8, SV: 2, IPouts: 165, BFP: 225}, l)
	assert.Equal(t, 7, l.Relief())
	assert.Equal(t, 2, tbl.Len())

	_, ok = tbl.Season("doeja01", 2014)
	assert.False(t, ok)
}

func TestPitchesEstimate(t *testing.T) {
	tests := []struct {
		msg  string
		line register.Line
		ok   bool
		res  float64
	}{
		{"regular", register.Line{G: 10, IPouts: 300, BFP: 400}, true, 70},
		{"no games", register.Line{G: 0, IPouts: 3, BFP: 4}, false, 0},
	}
	for _, tt := range tests {
		res, ok := tt.line.PitchesEstimate()
		assert.Equal(t, tt.ok, ok, tt.msg)
		assert.Equal(t, tt.res, res, tt.msg)
	}
}

func TestRelief(t *testing.T) {
	assert.Equal(t, 0, register.Line{G: 3, GS: 5}.Relief())
	assert.Equal(t, 3, register.Line{G: 3}.Relief())
}
