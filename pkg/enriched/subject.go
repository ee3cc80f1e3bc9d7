// Package enriched contains the model of the enriched injury table: subjects
// (pitcher plus injury year), their metric grids and the table itself.
//
// The package is pure. Reading and writing the table is done by
// internal/iotable.
package enriched

import (
	"fmt"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Column names of the roster and of the enriched table.
const (
	ColName         = "Name"
	ColInjury       = "Injury / Surgery"
	ColPosition     = "Pos"
	ColInjuryDate   = "Injury / Surgery Date"
	ColInjuryYear   = "Injury_Year"
	ColTrackingID   = "player_id"
	ColRegisterID   = "lahman_id"
	PositionPitcher = "Pitcher"
)

// Subject is a pitcher together with one injury year. A pitcher with two
// injuries is two subjects.
type Subject struct {
	Name       string
	InjuryYear int
	Position   string
	Injury     string
	InjuryDate string

	// TrackingID is the MLBAM identifier used by pitch tracking.
	// Zero means unset.
	TrackingID int

	// RegisterID is the Lahman playerID. Empty means unset.
	RegisterID string
}

// Key returns a durable identifier of the subject. It is stable across
// runs and does not depend on the row position.
func (s Subject) Key() uuid.UUID {
	name := strings.ToLower(strings.TrimSpace(s.Name))
	return gnuuid.New(fmt.Sprintf("%s|%d", name, s.InjuryYear))
}

// HasTrackingID reports whether pitch-tracking queries are possible.
func (s Subject) HasTrackingID() bool {
	return s.TrackingID > 0
}

// HasRegisterID reports whether register lookups are possible.
func (s Subject) HasRegisterID() bool {
	return s.RegisterID != ""
}

// HasIdentity is true if at least one identifier is known.
func (s Subject) HasIdentity() bool {
	return s.HasTrackingID() || s.HasRegisterID()
}

func (s Subject) String() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.InjuryYear)
}
