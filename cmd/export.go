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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/internal/iodb"
	"github.com/pitchwise/tjdelta/internal/ioexport"
	"github.com/pitchwise/tjdelta/internal/iotable"
	"github.com/pitchwise/tjdelta/pkg/lifecycle"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/spf13/cobra"
)

func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the enriched table to PostgreSQL",
		Long: `Copy defined metric values of the enriched table to the season_metrics
table of a PostgreSQL database, one row per pitcher, injury year, period
and metric.

Rows of exported pitchers are replaced in one transaction, so the export
can be repeated after every enrichment run.

Connection settings come from the 'database' section of the config file
or TJDELTA_DATABASE_* environment variables.

Examples:
  tjdelta export
  TJDELTA_DATABASE_HOST=db.local tjdelta export -o data/pitchers_enriched.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringP("output", "o", "",
		"path to the enriched table CSV")
	return exportCmd
}

func runExport(cmd *cobra.Command) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd))

	if _, err := os.Stat(cfg.Data.Output); err != nil {
		return iotable.LoadError(cfg.Data.Output, err)
	}
	tbl, _, err := iotable.Open(cfg.Data, metric.NewSet(cfg.Enrich.PitchTypes))
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	if !quiet(cmd) {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}

	var exporter lifecycle.Exporter = ioexport.New(op)
	n, err := exporter.Export(ctx, tbl)
	if err != nil {
		return err
	}

	if !quiet(cmd) {
		gn.Info("Exported <em>%s</em> values of %s subjects to <em>%s</em>",
			humanize.Comma(int64(n)),
			humanize.Comma(int64(len(tbl.Index()))),
			ioexport.Table,
		)
	}
	return nil
}
