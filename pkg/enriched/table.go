package enriched

import (
	"slices"

	"github.com/google/uuid"
	"github.com/pitchwise/tjdelta/pkg/metric"
)

// Row is one subject of the table with its metric cells. Fields keeps raw
// values of every non-metric column, so columns tjdelta does not know about
// survive a rewrite.
type Row struct {
	Subject Subject
	Cells   *Grid
	Fields  map[string]string
}

// Table is the enriched injury table. It is not safe for concurrent
// mutation; a single goroutine must own writes.
type Table struct {
	Set *metric.Set

	// Header holds non-metric columns in their original order.
	Header []string

	Rows []*Row

	present map[string]struct{}
}

// NewTable creates an empty table with the given non-metric header.
// Identity columns are appended to the header when missing.
func NewTable(set *metric.Set, header []string) *Table {
	res := &Table{
		Set:     set,
		Header:  slices.Clone(header),
		present: make(map[string]struct{}),
	}
	for _, v := range []string{ColTrackingID, ColRegisterID} {
		if !slices.Contains(res.Header, v) {
			res.Header = append(res.Header, v)
		}
	}
	return res
}

// AddRow appends a subject with an empty grid.
func (t *Table) AddRow(s Subject, fields map[string]string) *Row {
	if fields == nil {
		fields = make(map[string]string)
	}
	row := &Row{Subject: s, Cells: NewGrid(t.Set), Fields: fields}
	t.Rows = append(t.Rows, row)
	return row
}

// MarkColumn records that a metric column existed in the loaded file.
func (t *Table) MarkColumn(col string) {
	if _, ok := t.Set.Lookup(col); ok {
		t.present[col] = struct{}{}
	}
}

// HasColumn reports whether a metric column is part of the table.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.present[col]
	return ok
}

// MissingColumns lists metric columns that are not yet in the table.
func (t *Table) MissingColumns() []string {
	var res []string
	for _, v := range t.Set.Columns() {
		if !t.HasColumn(v) {
			res = append(res, v)
		}
	}
	return res
}

// EnsureColumns adds every missing metric column and returns the added
// names. New cells are undefined.
func (t *Table) EnsureColumns() []string {
	res := t.MissingColumns()
	for _, v := range res {
		t.present[v] = struct{}{}
	}
	return res
}

// Columns returns the full header of the table: non-metric columns
// followed by metric columns.
func (t *Table) Columns() []string {
	res := slices.Clone(t.Header)
	for _, v := range t.Set.Columns() {
		if t.HasColumn(v) {
			res = append(res, v)
		}
	}
	return res
}

// Merge writes computed values into a row and returns how many cells went
// from undefined to defined. Undefined values never overwrite defined
// ones, so merging can only add information.
func (t *Table) Merge(idx int, vals []CellValue) int {
	if idx < 0 || idx >= len(t.Rows) {
		return 0
	}
	grid := t.Rows[idx].Cells
	var filled int
	for _, v := range vals {
		if !v.Value.Valid {
			continue
		}
		if !grid.Get(v.Cell).Valid {
			filled++
		}
		grid.Set(v.Cell, v.Value)
	}
	return filled
}

// CountUndefined returns the number of undefined cells in the table.
func (t *Table) CountUndefined() int {
	total := len(t.Rows) * len(t.Set.Cells())
	for _, r := range t.Rows {
		total -= r.Cells.CountDefined()
	}
	return total
}

// Index maps durable subject keys to row positions. When the same subject
// appears more than once, the first row wins.
func (t *Table) Index() map[uuid.UUID]int {
	res := make(map[uuid.UUID]int, len(t.Rows))
	for i, r := range t.Rows {
		k := r.Subject.Key()
		if _, ok := res[k]; !ok {
			res[k] = i
		}
	}
	return res
}
