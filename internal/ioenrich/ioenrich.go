// Package ioenrich runs the enrichment of the injury table: it resolves
// missing identities, expands every subject into its season window with
// a bounded pool of workers, merges the results and saves the table once.
package ioenrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pitchwise/tjdelta/internal/iometrics"
	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/identity"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/window"
)

// Enricher implements lifecycle.Enricher.
type Enricher struct {
	cfg         *config.Config
	newComputer func() window.Computer
	resolver    *identity.Resolver
	metrics     *iometrics.Manager
	progress    bool
	quiet       bool
}

// Option configures an Enricher.
type Option func(*Enricher)

// OptResolver sets the resolver for subjects without identifiers.
func OptResolver(r *identity.Resolver) Option {
	return func(e *Enricher) {
		e.resolver = r
	}
}

// OptMetrics sets a collector of run metrics.
func OptMetrics(m *iometrics.Manager) Option {
	return func(e *Enricher) {
		e.metrics = m
	}
}

// OptProgress turns the progress bar on or off.
func OptProgress(b bool) Option {
	return func(e *Enricher) {
		e.progress = b
	}
}

// OptQuiet suppresses the user-facing summary.
func OptQuiet(b bool) Option {
	return func(e *Enricher) {
		e.quiet = b
	}
}

// New creates an Enricher. newComputer is called once per subject, so the
// returned Computer may keep per-subject state such as fetched events.
func New(
	cfg *config.Config,
	newComputer func() window.Computer,
	opts ...Option,
) *Enricher {
	res := &Enricher{
		cfg:         cfg,
		newComputer: newComputer,
		progress:    true,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Enrich fills the table and saves it to the configured output path.
//
// When the table already has every metric column, no subject got new
// identifiers and neither fill nor force mode is on, Enrich does nothing
// and reports a no-op. A cancelled
// context stops dispatching new subjects; values computed so far are
// merged and saved, and a CancelledError is returned with the report.
func (e *Enricher) Enrich(
	ctx context.Context,
	tbl *enriched.Table,
) (*enriched.Report, error) {
	start := time.Now()
	rep := &enriched.Report{
		Subjects:       len(tbl.Rows),
		FilledByColumn: make(map[string]int),
	}

	if e.resolver != nil {
		rep.Resolved, rep.Unresolved = ResolveIdentities(ctx, e.resolver, tbl)
	}

	added := tbl.EnsureColumns()
	rep.ColumnsAdded = len(added)
	if len(added) == 0 && rep.Resolved == 0 &&
		!e.cfg.Enrich.Fill && !e.cfg.Enrich.Force {
		rep.NoOp = true
		slog.Info("All metric columns exist, nothing to do")
		e.summary(rep)
		return rep, nil
	}

	rep.MissingBefore = tbl.CountUndefined()
	runErr := e.expandAll(ctx, tbl, rep)
	rep.MissingAfter = tbl.CountUndefined()
	rep.NoData = NoData(tbl)
	rep.Cancelled = runErr != nil

	if err := iotable.Save(e.cfg.Data.Output, tbl); err != nil {
		return rep, err
	}

	rep.Duration = time.Since(start)
	if e.metrics != nil {
		for range rep.NoData {
			e.metrics.IncSubject("no_data")
		}
		e.metrics.Finish(rep.Duration)
	}
	e.summary(rep)

	if runErr != nil {
		return rep, CancelledError(runErr)
	}
	return rep, nil
}

// NoData returns subjects whose playoff pitch counts are undefined in
// every period. A subject that appears in several rows is listed once.
func NoData(tbl *enriched.Table) []enriched.Subject {
	var res []enriched.Subject
	m := metric.Metric{Kind: metric.PlayoffPitchesPerGame}
	seen := make(map[uuid.UUID]struct{})
	for _, row := range tbl.Rows {
		if !row.Cells.AllUndefined(m) {
			continue
		}
		k := row.Subject.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, row.Subject)
	}
	return res
}
