// Package register holds season pitching totals from the historical
// register (Lahman database). The table is read-only after loading and is
// safe for concurrent lookups.
package register

import "strings"

// Line keeps season totals of one pitcher. Totals of several stints
// (teams) within a season are summed.
type Line struct {
	G      int
	GS     int
	SV     int
	IPouts int
	BFP    int
}

// Add sums two lines.
func (l Line) Add(o Line) Line {
	return Line{
		G:      l.G + o.G,
		GS:     l.GS + o.GS,
		SV:     l.SV + o.SV,
		IPouts: l.IPouts + o.IPouts,
		BFP:    l.BFP + o.BFP,
	}
}

// PitchesEstimate approximates pitches per game as (IPouts + BFP) / G.
// It returns false when the pitcher has no games.
func (l Line) PitchesEstimate() (float64, bool) {
	if l.G <= 0 {
		return 0, false
	}
	return float64(l.IPouts+l.BFP) / float64(l.G), true
}

// Relief returns appearances that were not starts, never negative.
func (l Line) Relief() int {
	return max(l.G-l.GS, 0)
}

type key struct {
	id     string
	season int
}

// Table is an in-memory register indexed by player and season.
type Table struct {
	lines map[key]Line
}

// New creates an empty register table.
func New() *Table {
	return &Table{lines: make(map[key]Line)}
}

// Add records one stint. Stints of the same player and season are summed.
// Must not be called after the table is shared between goroutines.
func (t *Table) Add(registerID string, season int, l Line) {
	k := key{id: strings.TrimSpace(registerID), season: season}
	t.lines[k] = t.lines[k].Add(l)
}

// Season returns summed totals of a pitcher for a season.
func (t *Table) Season(registerID string, season int) (Line, bool) {
	l, ok := t.lines[key{id: strings.TrimSpace(registerID), season: season}]
	return l, ok
}

// Len returns the number of (player, season) entries.
func (t *Table) Len() int {
	return len(t.lines)
}
