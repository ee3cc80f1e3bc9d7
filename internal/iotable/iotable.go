// Package iotable loads and saves the enriched table artifact.
package iotable

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pitchwise/tjdelta/internal/iofs"
	"github.com/pitchwise/tjdelta/internal/ioroster"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
)

// Open returns the enriched table from the output path when it exists, so
// values of earlier runs are reused. Otherwise the table is built from the
// roster. The second value is the path that was read.
func Open(cfg config.DataConfig, set *metric.Set) (*enriched.Table, string, error) {
	path := cfg.Roster
	if _, err := os.Stat(cfg.Output); err == nil {
		path = cfg.Output
	}

	tbl, _, err := ioroster.Load(path, set)
	if err != nil {
		return nil, path, LoadError(path, err)
	}
	slog.Info("Table opened",
		"path", path,
		"subjects", len(tbl.Rows),
		"missing_columns", len(tbl.MissingColumns()),
	)
	return tbl, path, nil
}

// Save replaces the file at path with the table in one atomic step.
func Save(path string, tbl *enriched.Table) error {
	err := iofs.WriteAtomic(path, func(w io.Writer) error {
		return Write(w, tbl)
	})
	if err != nil {
		return SaveError(path, err)
	}
	slog.Info("Table saved", "path", path, "subjects", len(tbl.Rows))
	return nil
}

// Write writes the table as CSV: non-metric columns in their original
// order, then metric columns in canonical order. Undefined cells are empty.
func Write(w io.Writer, tbl *enriched.Table) error {
	cw := csv.NewWriter(w)
	header := tbl.Columns()
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(header))
	for _, row := range tbl.Rows {
		for i, col := range header {
			rec[i] = field(tbl, row, col)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func field(tbl *enriched.Table, row *enriched.Row, col string) string {
	switch col {
	case enriched.ColTrackingID:
		if !row.Subject.HasTrackingID() {
			return ""
		}
		return strconv.Itoa(row.Subject.TrackingID)
	case enriched.ColRegisterID:
		return row.Subject.RegisterID
	}
	if c, ok := tbl.Set.Lookup(col); ok {
		return row.Cells.Get(c).String()
	}
	return row.Fields[col]
}
