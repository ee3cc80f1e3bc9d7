// Package ioevcache keeps pitch-tracking responses in a local SQLite file,
// so repeated runs do not query the tracking source for the same pitcher
// and date range again.
//
// Responses are stored GOB-encoded and keyed by (tracking id, start, end).
// Empty responses and failed fetches are not stored, so a season that has
// not been played yet, or one the source refused to answer, is asked for
// again on the next run.
package ioevcache

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/pitchwise/tjdelta/pkg/sources"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS pitch_events (
	tracking_id INTEGER NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	events BLOB NOT NULL,
	fetched_at INTEGER NOT NULL,
	PRIMARY KEY (tracking_id, start_date, end_date)
)`

// entry wraps events so that empty results encode to a valid value.
type entry struct {
	Events []sources.PitchEvent
}

// Cache decorates a tracking source. It is safe for concurrent use.
type Cache struct {
	path string
	db   *sql.DB
	src  sources.Tracking

	hits   atomic.Int64
	misses atomic.Int64
}

// Open opens or creates the cache file at path. Use ":memory:" for a
// cache that lives only as long as the process.
func Open(path string, src sources.Tracking) (*Cache, error) {
	if path != ":memory:" {
		if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
			return nil, OpenError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// SQLite allows one writer; a single connection also keeps an
	// in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	for _, q := range []string{"PRAGMA busy_timeout = 5000", schema} {
		if _, err = db.Exec(q); err != nil {
			db.Close()
			return nil, OpenError(path, err)
		}
	}

	slog.Info("Pitch event cache opened", "path", path)
	return &Cache{path: path, db: db, src: src}, nil
}

// FetchEvents implements sources.Tracking.
func (c *Cache) FetchEvents(
	ctx context.Context,
	trackingID int,
	start, end time.Time,
) ([]sources.PitchEvent, error) {
	res, ok, err := c.get(ctx, trackingID, start, end)
	if err != nil {
		slog.Warn("Pitch event cache read failed", "error", err)
	}
	if ok {
		c.hits.Add(1)
		return res, nil
	}
	c.misses.Add(1)

	res, err = c.src.FetchEvents(ctx, trackingID, start, end)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}

	if err = c.put(ctx, trackingID, start, end, res); err != nil {
		slog.Warn("Pitch event cache write failed", "error", err)
	}
	return res, nil
}

func (c *Cache) get(
	ctx context.Context,
	id int,
	start, end time.Time,
) ([]sources.PitchEvent, bool, error) {
	q := `SELECT events FROM pitch_events
	WHERE tracking_id = ? AND start_date = ? AND end_date = ?`

	var bs []byte
	err := c.db.QueryRowContext(ctx, q, id, day(start), day(end)).Scan(&bs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(id, err)
	}

	var e entry
	enc := gnfmt.GNgob{}
	if err = enc.Decode(bs, &e); err != nil {
		return nil, false, ReadError(id, err)
	}
	return e.Events, true, nil
}

func (c *Cache) put(
	ctx context.Context,
	id int,
	start, end time.Time,
	events []sources.PitchEvent,
) error {
	enc := gnfmt.GNgob{}
	bs, err := enc.Encode(entry{Events: events})
	if err != nil {
		return WriteError(id, err)
	}

	q := `INSERT OR REPLACE INTO pitch_events
	(tracking_id, start_date, end_date, events, fetched_at)
	VALUES (?, ?, ?, ?, ?)`
	_, err = c.db.ExecContext(ctx, q,
		id, day(start), day(end), bs, time.Now().Unix())
	if err != nil {
		return WriteError(id, err)
	}
	return nil
}

// Stats returns numbers of cache hits and misses since Open.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached responses.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var res int
	err := c.db.QueryRowContext(ctx,
		"SELECT count(*) FROM pitch_events").Scan(&res)
	if err != nil {
		return 0, ReadError(0, err)
	}
	return res, nil
}

// Close closes the cache file.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		slog.Error("Cannot close pitch event cache", "error", err)
		return err
	}
	slog.Info("Pitch event cache closed", "path", c.path)
	return nil
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}
