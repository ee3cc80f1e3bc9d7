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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/internal/ioenrich"
	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/spf13/cobra"
)

func getResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find tracking and register IDs of roster pitchers",
		Long: `Look up tracking (MLBAM) and register (Lahman) identifiers of roster
pitchers that have neither, using the Chadwick people register.

Names are corrected and manual identifiers are taken from
~/.config/tjdelta/identity.yaml. Identifiers that are already in the
table are never changed. The result is saved to the enriched table.
Rows that got identifiers here are computed by the next 'tjdelta enrich'
even when every metric column already exists.

Examples:
  tjdelta resolve
  tjdelta resolve --people data/chadwick/people.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runResolve(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	dataFlags(resolveCmd)
	return resolveCmd
}

func runResolve(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd))

	tbl, _, err := iotable.Open(cfg.Data, metric.NewSet(cfg.Enrich.PitchTypes))
	if err != nil {
		return err
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}

	found, missing := ioenrich.ResolveIdentities(
		context.Background(), resolver, tbl,
	)

	if err = iotable.Save(cfg.Data.Output, tbl); err != nil {
		return err
	}

	if quiet(cmd) {
		return nil
	}
	gn.Info("Resolved identities: <em>%s</em>, still missing: <em>%s</em>",
		humanize.Comma(int64(found)), humanize.Comma(int64(len(missing))))
	for _, v := range missing {
		gn.Warn("No identifiers for %s", v.String())
	}
	return nil
}
