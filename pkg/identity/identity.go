// Package identity resolves a free-form roster name into tracking and
// register identifiers.
//
// Resolution tries, in order: spelling corrections, a lookup by surname
// and given name, the same lookup with periods removed from the given
// name, a lookup with initials separated by spaces, and finally manual
// overrides keyed by the original roster name. Errors of the lookup source
// are logged and treated as "not found", so Resolve never fails.
package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pitchwise/tjdelta/pkg/sources"
)

// Resolver maps names to identities.
type Resolver struct {
	lookup sources.IdentityLookup
	data   *Data
}

// New creates a Resolver. Data can be nil, then no corrections or overrides
// are used.
func New(lookup sources.IdentityLookup, data *Data) *Resolver {
	if data == nil {
		data = &Data{}
	}
	return &Resolver{lookup: lookup, data: data}
}

// Resolve returns identifiers for a name. When nothing is found both
// identifiers are unset.
func (r *Resolver) Resolve(ctx context.Context, name string) Identity {
	name = strings.TrimSpace(name)
	if name == "" {
		return Identity{}
	}

	corrected := name
	if v, ok := r.data.Corrections[name]; ok {
		corrected = v
	}

	if r.lookup != nil {
		if res, ok := r.lookupVariants(ctx, corrected); ok {
			return res
		}
	}

	if res, ok := r.data.Overrides[name]; ok {
		slog.Debug("Identity from manual override", "name", name)
		return res
	}

	slog.Debug("Identity not found", "name", name)
	return Identity{}
}

func (r *Resolver) lookupVariants(
	ctx context.Context,
	name string,
) (Identity, bool) {
	last, first, ok := splitName(name)
	if !ok {
		return Identity{}, false
	}

	for _, v := range givenNameVariants(first) {
		if res, ok := r.try(ctx, last, v); ok {
			return res, true
		}
		if ctx.Err() != nil {
			return Identity{}, false
		}
	}
	return Identity{}, false
}

func (r *Resolver) try(
	ctx context.Context,
	last, first string,
) (Identity, bool) {
	cands, err := r.lookup.Lookup(ctx, last, first)
	if err != nil {
		slog.Debug("Identity lookup failed",
			"last", last, "first", first, "error", err)
		return Identity{}, false
	}
	if len(cands) == 0 {
		return Identity{}, false
	}
	c := cands[0]
	res := Identity{TrackingID: c.TrackingID, RegisterID: c.RegisterID}
	return res, res.Found()
}

// splitName takes the last token as surname and the rest as given name.
func splitName(name string) (last, first string, ok bool) {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return "", "", false
	}
	last = tokens[len(tokens)-1]
	first = strings.Join(tokens[:len(tokens)-1], " ")
	return last, first, true
}

// givenNameVariants returns the given name as is, without periods, and
// with a space after every period, skipping repeats.
func givenNameVariants(first string) []string {
	res := []string{first}
	add := func(s string) {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			return
		}
		for _, v := range res {
			if v == s {
				return
			}
		}
		res = append(res, s)
	}
	add(strings.ReplaceAll(first, ".", ""))
	add(strings.ReplaceAll(first, ".", ". "))
	return res
}
