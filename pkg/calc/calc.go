// Package calc computes season metrics of one subject in one season.
//
// Metrics come either from pitch-tracking events (seasons from the cutoff
// year on) or from the historical register. Calculators never return
// errors: missing identifiers, empty sources, failed queries and malformed
// rows all produce an undefined value for that single cell.
package calc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/register"
	"github.com/pitchwise/tjdelta/pkg/sources"
)

// Calculator computes metric values. It holds no mutable state apart from
// an optional per-subject events memo (see WithMemo).
type Calculator struct {
	tracking sources.Tracking
	register sources.Register

	cutoff  int
	playoff map[string]struct{}
	regular string
}

// New creates a Calculator. Either source may be nil, then metrics that
// need it are undefined.
func New(
	tracking sources.Tracking,
	register sources.Register,
	cfg config.EnrichConfig,
) *Calculator {
	res := &Calculator{
		tracking: tracking,
		register: register,
		cutoff:   cfg.CutoffYear,
		playoff:  make(map[string]struct{}),
		regular:  cfg.RegularGameType,
	}
	for _, v := range cfg.PlayoffGameTypes {
		res.playoff[v] = struct{}{}
	}
	return res
}

// WithMemo returns a copy of the calculator that fetches events of every
// season at most once. The copy is meant for expansion of one subject and
// is not safe for concurrent use.
func (c *Calculator) WithMemo() *Calculator {
	res := *c
	if c.tracking != nil {
		res.tracking = newMemo(c.tracking)
	}
	return &res
}

// Tracked reports whether the season is covered by pitch tracking.
func (c *Calculator) Tracked(season int) bool {
	return season >= c.cutoff
}

// Applicable tells if computing the metric can produce a value at all for
// the subject and season. It does not query anything.
func (c *Calculator) Applicable(
	m metric.Metric,
	s enriched.Subject,
	season int,
) bool {
	if season <= 0 {
		return false
	}
	byTracking := c.tracking != nil && s.HasTrackingID() && c.Tracked(season)
	byRegister := c.register != nil && s.HasRegisterID()

	switch m.Kind {
	case metric.RegularPitchesPerGame:
		if c.Tracked(season) {
			return byTracking
		}
		return byRegister
	case metric.GamesStarted, metric.ReliefAppearances:
		return byRegister || byTracking
	case metric.Saves:
		return byRegister
	default:
		return byTracking
	}
}

// Compute returns the value of metric m for the subject in the season.
func (c *Calculator) Compute(
	ctx context.Context,
	m metric.Metric,
	s enriched.Subject,
	season int,
) (res metric.Value) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Metric computation panicked",
				"subject", s.String(),
				"metric", m.Name(),
				"season", season,
				"panic", fmt.Sprint(r),
			)
			res = metric.Undefined()
		}
	}()

	if !c.Applicable(m, s, season) {
		return metric.Undefined()
	}

	switch m.Kind {
	case metric.PlayoffPitchesPerGame:
		return c.fromEvents(ctx, s, season, c.playoffPitches)
	case metric.RegularPitchesPerGame:
		if c.Tracked(season) {
			return c.fromEvents(ctx, s, season, c.regularPitches)
		}
		return c.registerPitches(s, season)
	case metric.SpinRate:
		return c.fromEvents(ctx, s, season, c.spinRate)
	case metric.Velocity:
		return c.fromEvents(ctx, s, season, c.velocity)
	case metric.PlayoffVelocity:
		return c.fromEvents(ctx, s, season, c.playoffVelocity)
	case metric.GamesStarted:
		if l, ok := c.registerLine(s, season); ok {
			return metric.Defined(float64(max(l.GS, 0)))
		}
		return c.fromEvents(ctx, s, season, c.gamesStarted)
	case metric.ReliefAppearances:
		if l, ok := c.registerLine(s, season); ok {
			return metric.Defined(float64(l.Relief()))
		}
		return c.fromEvents(ctx, s, season, c.reliefAppearances)
	case metric.Saves:
		if l, ok := c.registerLine(s, season); ok {
			return metric.Defined(float64(max(l.SV, 0)))
		}
		return metric.Undefined()
	case metric.PitchMix:
		return c.fromEvents(ctx, s, season, func(ee []sources.PitchEvent) metric.Value {
			return c.pitchMix(ee, m.PitchType)
		})
	}
	return metric.Undefined()
}

// fromEvents fetches tracking events of the season and aggregates them.
// Tracking is never queried for seasons before the cutoff.
func (c *Calculator) fromEvents(
	ctx context.Context,
	s enriched.Subject,
	season int,
	agg func([]sources.PitchEvent) metric.Value,
) metric.Value {
	if c.tracking == nil || !s.HasTrackingID() || !c.Tracked(season) {
		return metric.Undefined()
	}
	events, err := c.seasonEvents(ctx, s.TrackingID, season)
	if err != nil {
		slog.Debug("Cannot fetch tracking events",
			"subject", s.String(),
			"tracking_id", s.TrackingID,
			"season", season,
			"error", err,
		)
		return metric.Undefined()
	}
	if len(events) == 0 {
		return metric.Undefined()
	}
	return agg(events)
}

// seasonEvents queries the whole calendar year, and if it gives nothing,
// the narrower March 1 - November 1 window.
func (c *Calculator) seasonEvents(
	ctx context.Context,
	trackingID, season int,
) ([]sources.PitchEvent, error) {
	start, end := yearWindow(season)
	res, err := c.tracking.FetchEvents(ctx, trackingID, start, end)
	if err != nil {
		return nil, err
	}
	if len(res) > 0 {
		return res, nil
	}

	start, end = narrowWindow(season)
	return c.tracking.FetchEvents(ctx, trackingID, start, end)
}

func (c *Calculator) registerLine(
	s enriched.Subject,
	season int,
) (l register.Line, ok bool) {
	if c.register == nil || !s.HasRegisterID() {
		return l, false
	}
	return c.register.Season(s.RegisterID, season)
}

func (c *Calculator) registerPitches(
	s enriched.Subject,
	season int,
) metric.Value {
	l, ok := c.registerLine(s, season)
	if !ok {
		return metric.Undefined()
	}
	if f, ok := l.PitchesEstimate(); ok {
		return metric.Defined(f)
	}
	return metric.Undefined()
}

func yearWindow(season int) (time.Time, time.Time) {
	return time.Date(season, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(season, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func narrowWindow(season int) (time.Time, time.Time) {
	return time.Date(season, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(season, time.November, 1, 0, 0, 0, 0, time.UTC)
}
