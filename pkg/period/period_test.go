package period_test

import (
	"testing"

	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/stretchr/testify/assert"
)

func TestSeasons(t *testing.T) {
	var seasons []int
	for _, p := range period.All() {
		seasons = append(seasons, p.Season(2018))
	}
	assert.Equal(t,
		[]int{2014, 2015, 2016, 2017, 2019, 2020, 2021, 2022}, seasons)
	assert.NotContains(t, seasons, 2018)
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		p      period.Period
		suffix string
		label  string
		before bool
	}{
		{period.TMinus4, "t_minus_4", "T-4", true},
		{period.TMinus1, "t_minus_1", "T-1", true},
		{period.TPlus1, "t_plus_1", "T+1", false},
		{period.TPlus4, "t_plus_4", "T+4", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.suffix, tt.p.Suffix())
		assert.Equal(t, tt.label, tt.p.String())
		assert.Equal(t, tt.before, tt.p.Before())
		p, ok := period.FromSuffix(tt.suffix)
		assert.True(t, ok)
		assert.Equal(t, tt.p, p)
	}

	_, ok := period.FromSuffix("t_0")
	assert.False(t, ok)
	assert.False(t, period.Period(8).Valid())
}
