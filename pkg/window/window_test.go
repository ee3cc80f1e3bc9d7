package window_test

import (
	"context"
	"testing"

	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
	"github.com/pitchwise/tjdelta/pkg/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComputer struct {
	calls   int
	seasons map[int]struct{}
	value   func(m metric.Metric, season int) metric.Value
}

func (f *fakeComputer) Applicable(metric.Metric, enriched.Subject, int) bool {
	return true
}

func (f *fakeComputer) Compute(
	_ context.Context,
	m metric.Metric,
	_ enriched.Subject,
	season int,
) metric.Value {
	f.calls++
	f.seasons[season] = struct{}{}
	return f.value(m, season)
}

func newFake(value func(metric.Metric, int) metric.Value) *fakeComputer {
	return &fakeComputer{seasons: make(map[int]struct{}), value: value}
}

func always(v float64) func(metric.Metric, int) metric.Value {
	return func(metric.Metric, int) metric.Value { return metric.Defined(v) }
}

func newTable() *enriched.Table {
	set := metric.NewSet([]string{"FF", "SI", "SL", "CU", "CH", "FC"})
	tbl := enriched.NewTable(set, []string{enriched.ColName})
	tbl.EnsureColumns()
	tbl.AddRow(enriched.Subject{Name: "Jane Doe", InjuryYear: 2018, TrackingID: 1}, nil)
	return tbl
}

func TestNoInjurySeason(t *testing.T) {
	tbl := newTable()
	fc := newFake(always(1))
	e := window.New(func() window.Computer { return fc }, false)

	res := e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Len(t, res.Cells, 14*8)

	var seasons []int
	for _, p := range period.All() {
		seasons = append(seasons, p.Season(2018))
	}
	assert.Len(t, fc.seasons, 8)
	for _, v := range seasons {
		assert.Contains(t, fc.seasons, v)
	}
	assert.NotContains(t, fc.seasons, 2018)
}

func TestIdempotence(t *testing.T) {
	tbl := newTable()
	first := newFake(always(7))
	e := window.New(func() window.Computer { return first }, false)

	res := e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Equal(t, 14*8, res.Count(window.Computed))
	tbl.Merge(res.Row, res.Values())
	before := tbl.Rows[0].Cells.Clone()

	second := newFake(always(9))
	e = window.New(func() window.Computer { return second }, false)
	res = e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, 14*8, res.Count(window.Reused))

	tbl.Merge(res.Row, res.Values())
	assert.Equal(t, before.Values(), tbl.Rows[0].Cells.Values())
}

func TestMonotonicFill(t *testing.T) {
	tbl := newTable()
	velo := metric.Cell{Metric: metric.Metric{Kind: metric.Velocity}, Period: period.TMinus1}
	spin := metric.Cell{Metric: metric.Metric{Kind: metric.SpinRate}, Period: period.TPlus2}
	tbl.Merge(0, []enriched.CellValue{{Cell: velo, Value: metric.Defined(92)}})

	fc := newFake(func(m metric.Metric, season int) metric.Value {
		if m.Kind == metric.SpinRate && season == 2020 {
			return metric.Defined(2300)
		}
		return metric.Undefined()
	})
	e := window.New(func() window.Computer { return fc }, false)
	res := e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Equal(t, 14*8-1, fc.calls)

	filled := tbl.Merge(res.Row, res.Values())
	assert.Equal(t, 1, filled)

	grid := tbl.Rows[0].Cells
	assert.Equal(t, 92.0, grid.Get(velo).Float)
	assert.Equal(t, 2300.0, grid.Get(spin).Float)
}

func TestForce(t *testing.T) {
	tbl := newTable()
	velo := metric.Cell{Metric: metric.Metric{Kind: metric.Velocity}, Period: period.TMinus1}
	saves := metric.Cell{Metric: metric.Metric{Kind: metric.Saves}, Period: period.TMinus1}
	tbl.Merge(0, []enriched.CellValue{
		{Cell: velo, Value: metric.Defined(92)},
		{Cell: saves, Value: metric.Defined(4)},
	})

	fc := newFake(func(m metric.Metric, _ int) metric.Value {
		if m.Kind == metric.Velocity {
			return metric.Defined(93)
		}
		return metric.Undefined()
	})
	e := window.New(func() window.Computer { return fc }, true)
	res := e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Equal(t, 14*8, fc.calls)

	tbl.Merge(res.Row, res.Values())
	grid := tbl.Rows[0].Cells
	assert.Equal(t, 93.0, grid.Get(velo).Float)

	v := grid.Get(saves)
	require.True(t, v.Valid, "forced recompute keeps a value it cannot replace")
	assert.Equal(t, 4.0, v.Float)
}

type notApplicable struct{ fakeComputer }

func (notApplicable) Applicable(metric.Metric, enriched.Subject, int) bool {
	return false
}

func TestSkipped(t *testing.T) {
	tbl := newTable()
	na := &notApplicable{*newFake(always(1))}
	e := window.New(func() window.Computer { return na }, false)

	res := e.Expand(context.Background(), 0, tbl.Rows[0])
	assert.Equal(t, 14*8, res.Count(window.Skipped))
	assert.Equal(t, 0, na.calls)
	for _, v := range res.Cells {
		assert.False(t, v.Value.Valid)
	}
}

func TestCancelledContext(t *testing.T) {
	tbl := newTable()
	fc := newFake(always(1))
	e := window.New(func() window.Computer { return fc }, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := e.Expand(ctx, 0, tbl.Rows[0])
	assert.Equal(t, 0, fc.calls)
	assert.Equal(t, 14*8, res.Count(window.Skipped))
}
