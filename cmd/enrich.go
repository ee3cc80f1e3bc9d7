/*
Copyright © 2026 The tjdelta Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/internal/ioenrich"
	"github.com/pitchwise/tjdelta/internal/iometrics"
	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/pkg/calc"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/lifecycle"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/window"
	"github.com/spf13/cobra"
)

func getEnrichCmd() *cobra.Command {
	enrichCmd := &cobra.Command{
		Use:   "enrich",
		Short: "Compute season metrics around the injury of every pitcher",
		Long: `Compute metrics for four seasons before and four seasons after the
injury year of every roster pitcher and save the enriched table.

When the enriched table already exists, it is read instead of the roster
and values of earlier runs are kept. If the table already has every metric
column, nothing is done unless --fill or --force is given.

Interrupting the command (Ctrl-C) saves values computed so far.

Examples:
  tjdelta enrich
  tjdelta enrich -j 4 --no-cache
  tjdelta enrich --fill
  tjdelta enrich --force -o data/enriched_new.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runEnrich(cmd, nil)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	enrichFlags(enrichCmd)
	enrichCmd.Flags().Bool("fill", false,
		"retry undefined cells even if all metric columns exist")
	enrichCmd.Flags().Bool("force", false,
		"recompute cells that already have values")

	return enrichCmd
}

func getFillCmd() *cobra.Command {
	fillCmd := &cobra.Command{
		Use:   "fill",
		Short: "Retry metric cells that are still undefined",
		Long: `Retry every undefined cell of the enriched table. Defined cells are
reused, so only missing values cost queries. Same as 'tjdelta enrich --fill'.

Examples:
  tjdelta fill
  tjdelta fill -j 2`,
		Aliases: []string{"gaps"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runEnrich(cmd, []config.Option{config.OptEnrichFill(true)})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	enrichFlags(fillCmd)
	return fillCmd
}

func runEnrich(cmd *cobra.Command, extra []config.Option) error {
	cfg.Update(flagOptions(cmd))
	cfg.Update(extra)
	q := quiet(cmd)

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	set := metric.NewSet(cfg.Enrich.PitchTypes)
	tbl, _, err := iotable.Open(cfg.Data, set)
	if err != nil {
		return err
	}

	reg, err := newRegister(cfg)
	if err != nil {
		return err
	}

	m := iometrics.New()
	trk, err := newTracking(cfg, m)
	if err != nil {
		return err
	}
	defer trk.Close()

	resolver, err := optionalResolver(cfg)
	if err != nil {
		return err
	}

	c := calc.New(trk, reg, cfg.Enrich)
	enrOpts := []ioenrich.Option{
		ioenrich.OptMetrics(m),
		ioenrich.OptProgress(!q),
		ioenrich.OptQuiet(q),
	}
	if resolver != nil {
		enrOpts = append(enrOpts, ioenrich.OptResolver(resolver))
	}

	var enricher lifecycle.Enricher = ioenrich.New(
		cfg,
		func() window.Computer { return c.WithMemo() },
		enrOpts...,
	)
	_, err = enricher.Enrich(ctx, tbl)

	trk.Close()
	if cfg.Metrics.Textfile != "" {
		if mErr := m.WriteTextfile(cfg.Metrics.Textfile); mErr != nil {
			gn.PrintErrorMessage(mErr)
		}
	}
	return err
}
