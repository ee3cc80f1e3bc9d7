package ioevcache_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pitchwise/tjdelta/internal/ioevcache"
	"github.com/pitchwise/tjdelta/pkg/calc"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/metric"
	"github.com/pitchwise/tjdelta/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	mu     sync.Mutex
	calls  int
	events []sources.PitchEvent
	err    error
}

func (c *counter) FetchEvents(
	context.Context, int, time.Time, time.Time,
) ([]sources.PitchEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.events, c.err
}

var (
	start = time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC)
)

func events() []sources.PitchEvent {
	return []sources.PitchEvent{
		{
			GameID: 529400, GameDate: time.Date(2018, 4, 2, 0, 0, 0, 0, time.UTC),
			GameType: "R", PitchType: "FF", Inning: 1,
			Speed: 95.1, HasSpeed: true, Spin: 2301, HasSpin: true,
		},
		{GameID: 529400, GameType: "R", PitchType: "SL", Inning: 2},
	}
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	src := &counter{events: events()}
	c, err := ioevcache.Open(":memory:", src)
	require.NoError(t, err)
	defer c.Close()

	res, err := c.FetchEvents(ctx, 605400, start, end)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = c.FetchEvents(ctx, 605400, start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
	require.Len(t, res, 2)
	assert.Equal(t, events()[0].Speed, res[0].Speed)
	assert.True(t, res[0].GameDate.Equal(events()[0].GameDate))
	assert.False(t, res[1].HasSpin)

	_, err = c.FetchEvents(ctx, 605400, start, end.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls, "another window is another key")

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCacheEmptyAndErrors(t *testing.T) {
	ctx := context.Background()
	src := &counter{}
	c, err := ioevcache.Open(":memory:", src)
	require.NoError(t, err)
	defer c.Close()

	for range 2 {
		res, err := c.FetchEvents(ctx, 1, start, end)
		require.NoError(t, err)
		assert.Empty(t, res)
	}
	assert.Equal(t, 2, src.calls, "empty results are asked for again")

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	src.err = errors.New("throttled")
	for range 2 {
		_, err = c.FetchEvents(ctx, 2, start, end)
		assert.Error(t, err)
	}
	assert.Equal(t, 4, src.calls, "errors are not cached")
}

func TestCachePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "events.sqlite")

	src := &counter{events: events()}
	c, err := ioevcache.Open(path, src)
	require.NoError(t, err)
	_, err = c.FetchEvents(ctx, 605400, start, end)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	other := &counter{}
	c, err = ioevcache.Open(path, other)
	require.NoError(t, err)
	defer c.Close()
	res, err := c.FetchEvents(ctx, 605400, start, end)
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, 0, other.calls)
}

func TestCacheRefillsEmptySeason(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.sqlite")
	jane := enriched.Subject{Name: "Jane Doe", InjuryYear: 2018, TrackingID: 111}
	velo := metric.Metric{Kind: metric.Velocity}

	src := &counter{}
	c, err := ioevcache.Open(path, src)
	require.NoError(t, err)
	res := calc.New(c, nil, config.New().Enrich).Compute(ctx, velo, jane, 2018)
	assert.False(t, res.Valid)
	assert.Positive(t, src.calls)
	require.NoError(t, c.Close())

	src = &counter{events: []sources.PitchEvent{
		{GameID: 1, GameType: "R", PitchType: "FF", Speed: 90, HasSpeed: true},
		{GameID: 1, GameType: "R", PitchType: "FF", Speed: 92, HasSpeed: true},
		{GameID: 2, GameType: "R", PitchType: "SL", Speed: 94, HasSpeed: true},
	}}
	c, err = ioevcache.Open(path, src)
	require.NoError(t, err)
	defer c.Close()
	res = calc.New(c, nil, config.New().Enrich).Compute(ctx, velo, jane, 2018)
	require.True(t, res.Valid)
	assert.Equal(t, 92.0, res.Float)
	assert.Equal(t, 1, src.calls)
}
