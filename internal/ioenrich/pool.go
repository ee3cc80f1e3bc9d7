package ioenrich

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/window"
	"golang.org/x/sync/errgroup"
)

var statusNames = map[window.Status]string{
	window.Reused:   "reused",
	window.Computed: "computed",
	window.Skipped:  "skipped",
}

// expandAll fans subjects out to JobsNumber workers. Only the collector
// goroutine writes to the table.
func (e *Enricher) expandAll(
	ctx context.Context,
	tbl *enriched.Table,
	rep *enriched.Report,
) error {
	exp := window.New(e.newComputer, e.cfg.Enrich.Force)
	chIn := make(chan int)
	chOut := make(chan window.Result)

	var bar *pb.ProgressBar
	if e.progress {
		bar = pb.Full.Start(len(tbl.Rows))
		bar.Set("prefix", "Enriching subjects: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range max(e.cfg.JobsNumber, 1) {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for idx := range chIn {
				chOut <- exp.Expand(ctx, idx, tbl.Rows[idx])
			}
			return nil
		})
	}

	g.Go(func() error {
		for res := range chOut {
			e.merge(tbl, res, rep)
			if bar != nil {
				bar.Increment()
			}
		}
		return nil
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	g.Go(func() error {
		defer close(chIn)
		return e.dispatch(ctx, tbl, chIn)
	})

	return g.Wait()
}

// dispatch sends row indices to workers. It pauses after every PauseEvery
// subjects that need computation, to be gentle with the tracking source.
func (e *Enricher) dispatch(
	ctx context.Context,
	tbl *enriched.Table,
	chIn chan<- int,
) error {
	every := e.cfg.Enrich.PauseEvery
	pause := time.Duration(e.cfg.Enrich.PauseMs) * time.Millisecond
	total := len(tbl.Set.Cells())

	var pending int
	for i, row := range tbl.Rows {
		// The row belongs to the collector once it is sent.
		complete := row.Cells.CountDefined() == total
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chIn <- i:
		}

		if complete && !e.cfg.Enrich.Force {
			continue
		}
		pending++
		if every <= 0 || pause <= 0 || pending%every != 0 {
			continue
		}

		timer := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

// merge applies one expansion result to the table and updates the report.
func (e *Enricher) merge(
	tbl *enriched.Table,
	res window.Result,
	rep *enriched.Report,
) {
	grid := tbl.Rows[res.Row].Cells
	for _, v := range res.Cells {
		if v.Value.Valid && !grid.Get(v.Cell).Valid {
			rep.FilledByColumn[v.Cell.Column()]++
		}
	}

	filled := tbl.Merge(res.Row, res.Values())
	rep.Filled += filled
	outcome := "unchanged"
	if filled > 0 {
		rep.Updated++
		outcome = "updated"
	}

	slog.Debug("Subject expanded",
		"subject", res.Subject.String(),
		"computed", res.Count(window.Computed),
		"reused", res.Count(window.Reused),
		"skipped", res.Count(window.Skipped),
		"filled", filled,
	)

	if e.metrics == nil {
		return
	}
	e.metrics.IncSubject(outcome)
	e.metrics.AddFilled(filled)
	counts := make(map[[2]string]int)
	for _, v := range res.Cells {
		counts[[2]string{v.Cell.Metric.Name(), statusNames[v.Status]}]++
	}
	for k, n := range counts {
		e.metrics.AddCells(k[0], k[1], n)
	}
}
