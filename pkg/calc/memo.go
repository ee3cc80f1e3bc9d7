package calc

import (
	"context"
	"time"

	"github.com/pitchwise/tjdelta/pkg/sources"
)

type window struct {
	id         int
	start, end time.Time
}

type fetched struct {
	events []sources.PitchEvent
	err    error
}

// memo remembers tracking responses, errors included, so that one window
// is queried once during a subject expansion.
type memo struct {
	src  sources.Tracking
	seen map[window]fetched
}

func newMemo(src sources.Tracking) *memo {
	return &memo{src: src, seen: make(map[window]fetched)}
}

func (m *memo) FetchEvents(
	ctx context.Context,
	trackingID int,
	start, end time.Time,
) ([]sources.PitchEvent, error) {
	k := window{id: trackingID, start: start, end: end}
	if f, ok := m.seen[k]; ok {
		return f.events, f.err
	}
	events, err := m.src.FetchEvents(ctx, trackingID, start, end)
	if ctx.Err() == nil {
		m.seen[k] = fetched{events: events, err: err}
	}
	return events, err
}
