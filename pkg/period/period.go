// Package period enumerates seasons relative to an injury year.
//
// The injury season itself is never part of the window, so a window
// consists of four seasons before and four seasons after the injury.
package period

import "fmt"

// Period is a season offset relative to the injury year.
type Period int

const (
	TMinus4 Period = iota
	TMinus3
	TMinus2
	TMinus1
	TPlus1
	TPlus2
	TPlus3
	TPlus4
)

var offsets = [...]int{-4, -3, -2, -1, 1, 2, 3, 4}

// All returns every period in chronological order.
func All() []Period {
	return []Period{
		TMinus4, TMinus3, TMinus2, TMinus1,
		TPlus1, TPlus2, TPlus3, TPlus4,
	}
}

// Offset returns the distance from the injury year in seasons.
func (p Period) Offset() int {
	return offsets[p]
}

// Season returns the calendar season of the period for a given injury year.
func (p Period) Season(injuryYear int) int {
	return injuryYear + p.Offset()
}

// Before is true for periods preceding the injury.
func (p Period) Before() bool {
	return p.Offset() < 0
}

// Suffix is used to build column names, for example "t_minus_2".
func (p Period) Suffix() string {
	off := p.Offset()
	if off < 0 {
		return fmt.Sprintf("t_minus_%d", -off)
	}
	return fmt.Sprintf("t_plus_%d", off)
}

// String returns a human-readable label, for example "T-2".
func (p Period) String() string {
	return fmt.Sprintf("T%+d", p.Offset())
}

// Valid checks that p is one of the eight defined periods.
func (p Period) Valid() bool {
	return p >= TMinus4 && p <= TPlus4
}

// FromSuffix parses a column suffix back into a Period.
func FromSuffix(s string) (Period, bool) {
	for _, p := range All() {
		if p.Suffix() == s {
			return p, true
		}
	}
	return 0, false
}
