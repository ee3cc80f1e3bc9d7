// Package metric defines per-season performance metrics, their values and
// the column names they occupy in the enriched table.
package metric

import (
	"fmt"
	"strings"

	"github.com/pitchwise/tjdelta/pkg/period"
)

// Kind is a family of per-season metrics.
type Kind int

const (
	PlayoffPitchesPerGame Kind = iota
	RegularPitchesPerGame
	SpinRate
	Velocity
	PlayoffVelocity
	GamesStarted
	Saves
	ReliefAppearances
	PitchMix
)

var kindNames = map[Kind]string{
	PlayoffPitchesPerGame: "avg_pitches",
	RegularPitchesPerGame: "avg_pitches_regular",
	SpinRate:              "avg_spin_rate",
	Velocity:              "avg_velocity",
	PlayoffVelocity:       "avg_velocity_playoff",
	GamesStarted:          "gs",
	Saves:                 "sv",
	ReliefAppearances:     "relief_app",
}

// Metric identifies one metric. PitchType is used only by PitchMix.
type Metric struct {
	Kind      Kind
	PitchType string
}

// Name returns the column prefix of the metric.
func (m Metric) Name() string {
	if m.Kind == PitchMix {
		return strings.ToLower(m.PitchType) + "_pct"
	}
	return kindNames[m.Kind]
}

func (m Metric) String() string {
	return m.Name()
}

// Column returns the column name of the metric for period p.
// Playoff pitches per game for the seasons adjacent to the injury keep
// their historical names.
func (m Metric) Column(p period.Period) string {
	if m.Kind == PlayoffPitchesPerGame {
		switch p {
		case period.TMinus1:
			return "avg_pitches_before"
		case period.TPlus1:
			return "avg_pitches_after"
		}
	}
	return fmt.Sprintf("%s_%s", m.Name(), p.Suffix())
}

// Set is an ordered collection of metrics computed for every subject.
type Set struct {
	metrics []Metric
	columns map[string]Cell
}

// Cell addresses one metric in one period.
type Cell struct {
	Metric Metric
	Period period.Period
}

// Column returns the column name of the cell.
func (c Cell) Column() string {
	return c.Metric.Column(c.Period)
}

// NewSet creates the metric set. Scalar metrics come first, followed by
// one pitch-mix metric per pitch-type code, in the given order.
func NewSet(pitchTypes []string) *Set {
	res := &Set{columns: make(map[string]Cell)}
	for k := PlayoffPitchesPerGame; k < PitchMix; k++ {
		res.metrics = append(res.metrics, Metric{Kind: k})
	}
	for _, v := range pitchTypes {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		res.metrics = append(res.metrics, Metric{Kind: PitchMix, PitchType: v})
	}
	for _, m := range res.metrics {
		for _, p := range period.All() {
			res.columns[m.Column(p)] = Cell{Metric: m, Period: p}
		}
	}
	return res
}

// Metrics returns metrics of the set in order.
func (s *Set) Metrics() []Metric {
	return s.metrics
}

// Len returns the number of metrics.
func (s *Set) Len() int {
	return len(s.metrics)
}

// Index returns the position of a metric in the set or -1.
func (s *Set) Index(m Metric) int {
	for i, v := range s.metrics {
		if v == m {
			return i
		}
	}
	return -1
}

// Cells returns every (metric, period) pair, grouped by metric.
func (s *Set) Cells() []Cell {
	res := make([]Cell, 0, len(s.metrics)*len(period.All()))
	for _, m := range s.metrics {
		for _, p := range period.All() {
			res = append(res, Cell{Metric: m, Period: p})
		}
	}
	return res
}

// Columns returns all metric column names in table order.
func (s *Set) Columns() []string {
	cells := s.Cells()
	res := make([]string, len(cells))
	for i, v := range cells {
		res[i] = v.Column()
	}
	return res
}

// Lookup finds the cell a column name belongs to.
func (s *Set) Lookup(column string) (Cell, bool) {
	c, ok := s.columns[column]
	return c, ok
}
