// Package ioexport copies defined cells of the enriched table into
// PostgreSQL in long format, one row per subject, period and metric.
package ioexport

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pitchwise/tjdelta/internal/iodb"
	"github.com/pitchwise/tjdelta/pkg/db"
	"github.com/pitchwise/tjdelta/pkg/enriched"
)

// Table is the name of the export table.
const Table = "season_metrics"

var columns = []string{
	"subject_id", "name", "injury_year", "period", "season", "metric", "value",
}

const createTable = `
CREATE TABLE IF NOT EXISTS season_metrics (
	subject_id  uuid             NOT NULL,
	name        text             NOT NULL,
	injury_year integer          NOT NULL,
	period      text             NOT NULL,
	season      integer          NOT NULL,
	metric      text             NOT NULL,
	value       double precision NOT NULL,
	PRIMARY KEY (subject_id, period, metric)
)`

// Exporter implements lifecycle.Exporter.
type Exporter struct {
	op db.Operator
}

// New creates an Exporter that works through a connected operator.
func New(op db.Operator) *Exporter {
	return &Exporter{op: op}
}

// Export replaces rows of every subject of the table with its defined
// cells. Everything happens in one transaction, so a failed export leaves
// the database as it was.
func (e *Exporter) Export(ctx context.Context, tbl *enriched.Table) (int, error) {
	pool := e.op.Pool()
	if pool == nil {
		return 0, iodb.NotConnectedError()
	}

	if _, err := pool.Exec(ctx, createTable); err != nil {
		return 0, ExportError("create table", err)
	}

	rows := Rows(tbl)
	ids := subjectIDs(tbl)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, ExportError("begin", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		"DELETE FROM season_metrics WHERE subject_id = ANY($1)", ids,
	)
	if err != nil {
		return 0, ExportError("delete", err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{Table},
		columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, ExportError("copy", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, ExportError("commit", err)
	}

	slog.Info("Table exported",
		"table", Table, "subjects", len(ids), "rows", n,
	)
	return int(n), nil
}

// Rows converts defined cells of the table into export rows in column
// order. Subjects that appear twice are exported once.
func Rows(tbl *enriched.Table) [][]any {
	var res [][]any
	seen := make(map[uuid.UUID]struct{})
	for _, row := range tbl.Rows {
		s := row.Subject
		k := s.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		for _, v := range row.Cells.Values() {
			if !v.Value.Valid {
				continue
			}
			res = append(res, []any{
				k,
				s.Name,
				s.InjuryYear,
				v.Cell.Period.String(),
				v.Cell.Period.Season(s.InjuryYear),
				v.Cell.Metric.Name(),
				v.Value.Float,
			})
		}
	}
	return res
}

func subjectIDs(tbl *enriched.Table) []uuid.UUID {
	idx := tbl.Index()
	res := make([]uuid.UUID, 0, len(idx))
	for k := range idx {
		res = append(res, k)
	}
	return res
}
