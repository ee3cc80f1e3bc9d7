package enriched

import (
	"cmp"
	"slices"
	"time"
)

// Report summarizes one enrichment run.
type Report struct {
	// NoOp is true when the table already had every metric column and
	// neither fill nor force mode was requested. Nothing is computed or
	// written then.
	NoOp bool

	Subjects     int
	ColumnsAdded int

	// Resolved is the number of subjects that got identifiers during the
	// run; Unresolved lists subjects that still have none.
	Resolved   int
	Unresolved []Subject

	MissingBefore int
	MissingAfter  int

	// Filled is the number of cells that went from undefined to defined.
	Filled int

	// Updated is the number of subjects with at least one filled cell.
	Updated int

	// FilledByColumn counts filled cells per column.
	FilledByColumn map[string]int

	// NoData lists subjects without any playoff pitch data, each subject
	// once.
	NoData []Subject

	// Cancelled is true when the run was interrupted. Values computed
	// before the interruption are still merged and saved.
	Cancelled bool

	Duration time.Duration
}

// ColumnCount is a column with a number of filled cells.
type ColumnCount struct {
	Column string
	Count  int
}

// TopColumns returns up to n columns with most filled cells.
func (r *Report) TopColumns(n int) []ColumnCount {
	res := make([]ColumnCount, 0, len(r.FilledByColumn))
	for k, v := range r.FilledByColumn {
		res = append(res, ColumnCount{Column: k, Count: v})
	}
	slices.SortFunc(res, func(a, b ColumnCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
	if len(res) > n {
		res = res[:n]
	}
	return res
}
