package metric_test

import (
	"math"
	"testing"

	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnNames(t *testing.T) {
	tests := []struct {
		m   metric.Metric
		p   period.Period
		res string
	}{
		{metric.Metric{Kind: metric.PlayoffPitchesPerGame}, period.TMinus1,
			"avg_pitches_before"},
		{metric.Metric{Kind: metric.PlayoffPitchesPerGame}, period.TPlus1,
			"avg_pitches_after"},
		{metric.Metric{Kind: metric.PlayoffPitchesPerGame}, period.TMinus3,
			"avg_pitches_t_minus_3"},
		{metric.Metric{Kind: metric.RegularPitchesPerGame}, period.TMinus1,
			"avg_pitches_regular_t_minus_1"},
		{metric.Metric{Kind: metric.PlayoffVelocity}, period.TPlus2,
			"avg_velocity_playoff_t_plus_2"},
		{metric.Metric{Kind: metric.ReliefAppearances}, period.TPlus4,
			"relief_app_t_plus_4"},
		{metric.Metric{Kind: metric.PitchMix, PitchType: "FC"}, period.TMinus4,
			"fc_pct_t_minus_4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.res, tt.m.Column(tt.p))
	}
}

func TestSet(t *testing.T) {
	set := metric.NewSet([]string{"FF", "SI", "SL", "CU", "CH", "FC"})
	assert.Equal(t, 14, set.Len())

	cols := set.Columns()
	assert.Len(t, cols, 14*8)

	seen := make(map[string]struct{})
	for _, v := range cols {
		_, dup := seen[v]
		require.False(t, dup, v)
		seen[v] = struct{}{}

		c, ok := set.Lookup(v)
		require.True(t, ok, v)
		assert.Equal(t, v, c.Column())
	}

	_, ok := set.Lookup("name")
	assert.False(t, ok)

	idx := set.Index(metric.Metric{Kind: metric.PitchMix, PitchType: "SL"})
	assert.Equal(t, 10, idx)
	assert.Equal(t, -1,
		set.Index(metric.Metric{Kind: metric.PitchMix, PitchType: "KN"}))
}

func TestValue(t *testing.T) {
	assert.False(t, metric.Value{}.Valid)
	assert.False(t, metric.Defined(math.NaN()).Valid)

	zero := metric.Defined(0)
	assert.True(t, zero.Valid)
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, "", metric.Undefined().String())

	tests := []struct {
		in    string
		valid bool
		f     float64
	}{
		{"", false, 0},
		{"NaN", false, 0},
		{"None", false, 0},
		{"0", true, 0},
		{"92.5", true, 92.5},
		{" 12 ", true, 12},
	}
	for _, tt := range tests {
		v, err := metric.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.valid, v.Valid, tt.in)
		assert.Equal(t, tt.f, v.Float, tt.in)
	}

	_, err := metric.Parse("fast")
	assert.Error(t, err)

	assert.Equal(t, 33.33, metric.Round2(100.0/3))
}
