package ioenrich

import (
	"context"
	"log/slog"

	"github.com/pitchwise/tjdelta/pkg/enriched"
	"github.com/pitchwise/tjdelta/pkg/identity"
)

// ResolveIdentities looks up identifiers of subjects that have none.
// Identifiers that are already set are never changed. It returns the
// number of newly resolved subjects and the subjects that stay without
// identifiers.
func ResolveIdentities(
	ctx context.Context,
	r *identity.Resolver,
	tbl *enriched.Table,
) (int, []enriched.Subject) {
	var found int
	var missing []enriched.Subject
	cache := make(map[string]identity.Identity)

	for _, row := range tbl.Rows {
		s := &row.Subject
		if s.HasIdentity() {
			continue
		}
		if ctx.Err() != nil {
			missing = append(missing, *s)
			continue
		}

		id, ok := cache[s.Name]
		if !ok {
			id = r.Resolve(ctx, s.Name)
			cache[s.Name] = id
		}
		if !id.Found() {
			missing = append(missing, *s)
			continue
		}
		s.TrackingID = id.TrackingID
		s.RegisterID = id.RegisterID
		found++
	}

	slog.Info("Identities resolved", "found", found, "missing", len(missing))
	return found, missing
}
