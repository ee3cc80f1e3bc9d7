// Package lifecycle defines the high-level operations of tjdelta. Their
// implementations live in internal/io* packages.
package lifecycle

import (
	"context"

	"github.com/pitchwise/tjdelta/pkg/enriched"
)

// Enricher fills metric cells of the enriched table and persists the
// result.
//
// Running it repeatedly on its own output is safe: defined cells are
// reused and never replaced by undefined ones, so a second run over a
// fully populated table does not query any source.
type Enricher interface {
	Enrich(ctx context.Context, tbl *enriched.Table) (*enriched.Report, error)
}

// Exporter copies defined cells of the table into a database in long
// format. It returns the number of exported rows.
type Exporter interface {
	Export(ctx context.Context, tbl *enriched.Table) (int, error)
}
