// Package window expands one subject into every (period, metric) cell of
// its season window around the injury year.
//
// A cell that already holds a value is reused as is, so a fully populated
// row costs no external queries when it is expanded again. Only an
// explicit force flag makes the expander recompute such cells.
package window

import (
	"context"

	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
)

// Computer computes a metric of a subject in one season.
type Computer interface {
	// Applicable tells without querying anything whether a value is
	// possible at all.
	Applicable(m metric.Metric, s enriched.Subject, season int) bool

	// Compute returns the value or undefined; it never fails.
	Compute(
		ctx context.Context,
		m metric.Metric,
		s enriched.Subject,
		season int,
	) metric.Value
}

// Status describes how a cell of a Result was obtained.
type Status int

const (
	// Reused cells kept the value from the existing row.
	Reused Status = iota
	// Computed cells were given to the Computer.
	Computed
	// Skipped cells cannot have a value for this subject and season, for
	// example tracking metrics before the cutoff year.
	Skipped
)

// Cell is one expanded (period, metric) value.
type Cell struct {
	enriched.CellValue
	Status Status
}

// Result is the outcome of one subject expansion. It does not share memory
// with the table and can be passed between goroutines.
type Result struct {
	Row     int
	Subject enriched.Subject
	Cells   []Cell
}

// Values returns cells in a form accepted by enriched.Table.Merge.
func (r Result) Values() []enriched.CellValue {
	res := make([]enriched.CellValue, len(r.Cells))
	for i, v := range r.Cells {
		res[i] = v.CellValue
	}
	return res
}

// Count returns the number of cells with a given status.
func (r Result) Count(st Status) int {
	var res int
	for _, v := range r.Cells {
		if v.Status == st {
			res++
		}
	}
	return res
}

// Expander creates a fresh Computer for every subject, which allows the
// Computer to keep per-subject memos.
type Expander struct {
	newComputer func() Computer
	force       bool
}

// New creates an Expander. If force is true, cells with values are
// recomputed too.
func New(newComputer func() Computer, force bool) *Expander {
	return &Expander{newComputer: newComputer, force: force}
}

// Expand returns values of all cells of the row. The row is not modified.
func (e *Expander) Expand(ctx context.Context, idx int, row *enriched.Row) Result {
	s := row.Subject
	existing := row.Cells.Values()
	res := Result{
		Row:     idx,
		Subject: s,
		Cells:   make([]Cell, 0, len(existing)),
	}

	comp := e.newComputer()
	for _, v := range existing {
		if v.Value.Valid && !e.force {
			res.Cells = append(res.Cells, Cell{CellValue: v, Status: Reused})
			continue
		}

		season := v.Cell.Period.Season(s.InjuryYear)
		if ctx.Err() != nil || !comp.Applicable(v.Cell.Metric, s, season) {
			res.Cells = append(res.Cells, Cell{CellValue: v, Status: Skipped})
			continue
		}

		val := comp.Compute(ctx, v.Cell.Metric, s, season)
		if !val.Valid && v.Value.Valid {
			val = v.Value
		}
		res.Cells = append(res.Cells, Cell{
			CellValue: enriched.CellValue{Cell: v.Cell, Value: val},
			Status:    Computed,
		})
	}
	return res
}
