// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/pitchwise/tjdelta/pkg/config"
)

// TestDatabaseName is the database name used for all integration tests.
// Tests never run against the export database of a real setup.
const TestDatabaseName = "tjdelta_test"

// DatabaseConfig returns database settings for integration tests. It skips
// the test in short mode or when TJDELTA_DATABASE_HOST is not set.
//
// Connection parameters come from TJDELTA_DATABASE_* environment variables
// on top of defaults, for example:
//
//	docker run -d -e POSTGRES_PASSWORD=postgres -p 5432:5432 postgres:16
//	TJDELTA_DATABASE_HOST=localhost go test ./...
func DatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	host := os.Getenv("TJDELTA_DATABASE_HOST")
	if host == "" {
		t.Skip("Skipping integration test, TJDELTA_DATABASE_HOST is not set")
	}

	opts := []config.Option{config.OptDatabaseHost(host)}
	if s := os.Getenv("TJDELTA_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("TJDELTA_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("TJDELTA_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}

	cfg := config.New()
	cfg.Update(opts)
	cfg.Database.Database = TestDatabaseName
	return &cfg.Database
}

// SetupTempHome points HOME to a temporary directory, so config, cache
// and log files created by a test do not touch the real ones.
//
// Returns the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}
