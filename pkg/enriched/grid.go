package enriched

import (
	"slices"

	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/period"
)

// Grid stores one value per (metric, period) cell of a metric set.
// Every cell exists from the start and is undefined until set.
type Grid struct {
	set  *metric.Set
	vals []metric.Value
}

// CellValue is a value addressed to a cell.
type CellValue struct {
	Cell  metric.Cell
	Value metric.Value
}

// NewGrid creates a grid where every cell is undefined.
func NewGrid(set *metric.Set) *Grid {
	return &Grid{
		set:  set,
		vals: make([]metric.Value, set.Len()*len(period.All())),
	}
}

func (g *Grid) index(c metric.Cell) int {
	mi := g.set.Index(c.Metric)
	if mi < 0 || !c.Period.Valid() {
		return -1
	}
	return mi*len(period.All()) + int(c.Period)
}

// Get returns the value of a cell. Cells of metrics outside of the set are
// undefined.
func (g *Grid) Get(c metric.Cell) metric.Value {
	i := g.index(c)
	if i < 0 {
		return metric.Value{}
	}
	return g.vals[i]
}

// Set stores a value. Cells outside of the set are ignored.
func (g *Grid) Set(c metric.Cell, v metric.Value) {
	if i := g.index(c); i >= 0 {
		g.vals[i] = v
	}
}

// Values returns all cells with their values in table order.
func (g *Grid) Values() []CellValue {
	cells := g.set.Cells()
	res := make([]CellValue, len(cells))
	for i, c := range cells {
		res[i] = CellValue{Cell: c, Value: g.vals[i]}
	}
	return res
}

// CountDefined returns the number of defined cells.
func (g *Grid) CountDefined() int {
	var res int
	for _, v := range g.vals {
		if v.Valid {
			res++
		}
	}
	return res
}

// AllUndefined is true when the metric has no value in any period.
func (g *Grid) AllUndefined(m metric.Metric) bool {
	for _, p := range period.All() {
		if g.Get(metric.Cell{Metric: m, Period: p}).Valid {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{set: g.set, vals: slices.Clone(g.vals)}
}
