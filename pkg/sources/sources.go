// Package sources defines contracts of external data tjdelta depends on:
// the people register used to resolve identities, the pitch-tracking event
// source and the historical season register.
//
// Implementations live in internal/io* packages. Calculators and the
// identity resolver depend only on these interfaces, so tests can inject
// in-memory fakes.
package sources

import (
	"context"
	"time"

	"github.com/pitchwise/tjdelta/pkg/register"
)

// Candidate is an identity record returned by a people lookup.
type Candidate struct {
	// TrackingID is the MLBAM identifier, zero when absent.
	TrackingID int

	// RegisterID is the Lahman/Baseball-Reference identifier, empty when
	// absent.
	RegisterID string

	NameFirst string
	NameLast  string
}

// IdentityLookup finds people by surname and given name. The first
// candidate is authoritative. An empty result is not an error.
type IdentityLookup interface {
	Lookup(ctx context.Context, last, first string) ([]Candidate, error)
}

// PitchEvent is one pitch reported by pitch tracking. Has* flags tell
// whether optional measurements were present.
type PitchEvent struct {
	// GameID is the unique game identifier (game_pk).
	GameID int64

	GameDate time.Time

	// GameType is a one-letter code, "R" for regular season and D, L, W,
	// F for postseason rounds.
	GameType string

	// PitchType is a pitch classification code such as FF or SL. Empty
	// when not classified.
	PitchType string

	// Inning is zero when unknown.
	Inning int

	Speed    float64
	HasSpeed bool

	Spin    float64
	HasSpin bool
}

// Tracking returns pitch events of one pitcher between two dates,
// inclusive. An empty result is valid and means no data.
type Tracking interface {
	FetchEvents(
		ctx context.Context,
		trackingID int,
		start, end time.Time,
	) ([]PitchEvent, error)
}

// Register gives season totals by register identifier.
type Register interface {
	Season(registerID string, season int) (register.Line, bool)
}

// TrackingFunc adapts a function to the Tracking interface.
type TrackingFunc func(
	ctx context.Context,
	trackingID int,
	start, end time.Time,
) ([]PitchEvent, error)

// FetchEvents calls f.
func (f TrackingFunc) FetchEvents(
	ctx context.Context,
	trackingID int,
	start, end time.Time,
) ([]PitchEvent, error) {
	return f(ctx, trackingID, start, end)
}
