/*
Copyright © 2026 The tjdelta Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/internal/iochadwick"
	"github.com/pitchwise/tjdelta/internal/ioevcache"
	"github.com/pitchwise/tjdelta/internal/iofs"
	"github.com/pitchwise/tjdelta/internal/iometrics"
	"github.com/pitchwise/tjdelta/internal/ioregister"
	"github.com/pitchwise/tjdelta/internal/iosavant"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/pitchwise/tjdelta/pkg/identity"
	"github.com/pitchwise/tjdelta/pkg/sources"
)

// newResolver builds an identity resolver from the people register and
// the identity corrections file.
func newResolver(cfg *config.Config) (*identity.Resolver, error) {
	people, err := iochadwick.Load(cfg.Data.People)
	if err != nil {
		return nil, err
	}

	bs, err := iofs.ReadIdentityFile(cfg.HomeDir)
	if err != nil {
		return nil, err
	}
	data, err := identity.Parse(bs)
	if err != nil {
		return nil, err
	}

	return identity.New(people, data), nil
}

// optionalResolver returns nil with a warning when the people register is
// absent. Subjects without identifiers then stay without values.
func optionalResolver(cfg *config.Config) (*identity.Resolver, error) {
	if _, err := os.Stat(cfg.Data.People); err != nil {
		gn.Warn(
			"People register <em>%s</em> not found, identities are not resolved",
			cfg.Data.People,
		)
		return nil, nil
	}
	return newResolver(cfg)
}

// newRegister loads Lahman season totals. A missing file is not an error:
// register metrics stay undefined.
func newRegister(cfg *config.Config) (sources.Register, error) {
	if _, err := os.Stat(cfg.Data.Register); err != nil {
		gn.Warn(
			"Register <em>%s</em> not found, register metrics are skipped",
			cfg.Data.Register,
		)
		return nil, nil
	}
	res, err := ioregister.Load(cfg.Data.Register)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// tracking is the pitch-tracking source of a run: the statcast client
// behind fetch counters and, unless disabled, the persistent cache.
type tracking struct {
	sources.Tracking
	cache   *ioevcache.Cache
	metrics *iometrics.Manager
}

func newTracking(cfg *config.Config, m *iometrics.Manager) (*tracking, error) {
	res := &tracking{metrics: m}
	src := m.Tracking(iosavant.New(cfg.Tracking))
	if cfg.Tracking.DisableCache {
		res.Tracking = src
		return res, nil
	}

	cache, err := ioevcache.Open(config.EventCachePath(cfg.HomeDir), src)
	if err != nil {
		return nil, err
	}
	res.Tracking = cache
	res.cache = cache
	return res, nil
}

// Close records cache statistics and closes the cache. It can be called
// more than once.
func (t *tracking) Close() {
	if t.cache == nil {
		return
	}
	hits, misses := t.cache.Stats()
	t.metrics.SetCacheStats(hits, misses)
	if err := t.cache.Close(); err != nil {
		slog.Warn("Cannot close event cache", "error", err)
	}
	t.cache = nil
}
