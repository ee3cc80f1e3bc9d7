package enriched_test

import (
	"testing"

	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var velo = metric.Metric{Kind: metric.Velocity}

func newTable() *enriched.Table {
	set := metric.NewSet([]string{"FF", "SL"})
	tbl := enriched.NewTable(set, []string{enriched.ColName, enriched.ColInjuryYear})
	tbl.AddRow(enriched.Subject{Name: "Jane Doe", InjuryYear: 2018}, nil)
	return tbl
}

func TestSubjectKey(t *testing.T) {
	a := enriched.Subject{Name: "Jane Doe", InjuryYear: 2018}
	b := enriched.Subject{Name: " jane doe ", InjuryYear: 2018, TrackingID: 5}
	c := enriched.Subject{Name: "Jane Doe", InjuryYear: 2019}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.False(t, a.HasIdentity())
	assert.True(t, b.HasIdentity())
}

func TestNewTable(t *testing.T) {
	tbl := newTable()
	assert.Equal(t,
		[]string{"Name", "Injury_Year", "player_id", "lahman_id"}, tbl.Header)

	row := tbl.Rows[0]
	for _, v := range row.Cells.Values() {
		assert.False(t, v.Value.Valid, v.Cell.Column())
	}
	assert.Equal(t, 10*8, tbl.CountUndefined())
}

func TestEnsureColumns(t *testing.T) {
	tbl := newTable()
	tbl.MarkColumn("avg_velocity_t_minus_1")
	tbl.MarkColumn("Name")

	assert.True(t, tbl.HasColumn("avg_velocity_t_minus_1"))
	assert.False(t, tbl.HasColumn("Name"))

	added := tbl.EnsureColumns()
	assert.Len(t, added, 10*8-1)
	assert.NotContains(t, added, "avg_velocity_t_minus_1")

	assert.Empty(t, tbl.EnsureColumns())
	assert.Len(t, tbl.Columns(), 4+10*8)
}

func TestMerge(t *testing.T) {
	tbl := newTable()
	cell := metric.Cell{Metric: velo, Period: period.TMinus1}
	gs := metric.Cell{
		Metric: metric.Metric{Kind: metric.GamesStarted}, Period: period.TPlus2,
	}

	filled := tbl.Merge(0, []enriched.CellValue{
		{Cell: cell, Value: metric.Defined(92)},
		{Cell: gs, Value: metric.Defined(0)},
	})
	assert.Equal(t, 2, filled)

	t.Run("undefined never overwrites defined", func(t *testing.T) {
		filled = tbl.Merge(0, []enriched.CellValue{
			{Cell: cell, Value: metric.Undefined()},
		})
		assert.Equal(t, 0, filled)
		v := tbl.Rows[0].Cells.Get(cell)
		require.True(t, v.Valid)
		assert.Equal(t, 92.0, v.Float)
	})

	t.Run("defined zero is kept", func(t *testing.T) {
		v := tbl.Rows[0].Cells.Get(gs)
		assert.True(t, v.Valid)
		assert.Equal(t, 0.0, v.Float)
	})

	t.Run("out of range row", func(t *testing.T) {
		assert.Equal(t, 0, tbl.Merge(5, []enriched.CellValue{
			{Cell: cell, Value: metric.Defined(1)},
		}))
	})

	assert.False(t, tbl.Rows[0].Cells.AllUndefined(velo))
	assert.True(t, tbl.Rows[0].Cells.AllUndefined(
		metric.Metric{Kind: metric.Saves}))
}

func TestIndex(t *testing.T) {
	tbl := newTable()
	tbl.AddRow(enriched.Subject{Name: "John Roe", InjuryYear: 2016}, nil)
	tbl.AddRow(enriched.Subject{Name: "Jane Doe", InjuryYear: 2018}, nil)

	idx := tbl.Index()
	assert.Len(t, idx, 2)
	assert.Equal(t, 0, idx[tbl.Rows[2].Subject.Key()])
}

func TestReportTopColumns(t *testing.T) {
	r := enriched.Report{FilledByColumn: map[string]int{
		"gs_t_minus_1":  3,
		"sv_t_minus_1":  5,
		"avg_spin_rate": 3,
		"ff_pct_t_plus": 1,
	}}
	top := r.TopColumns(3)
	assert.Equal(t, []enriched.ColumnCount{
		{Column: "sv_t_minus_1", Count: 5},
		{Column: "avg_spin_rate", Count: 3},
		{Column: "gs_t_minus_1", Count: 3},
	}, top)
	assert.Len(t, r.TopColumns(10), 4)
}
