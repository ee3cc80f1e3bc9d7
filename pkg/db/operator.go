package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pitchwise/tjdelta/pkg/config"
)

// Operator manages a connection pool to the export database.
// Exporters use Pool() for transactions and CopyFrom.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
