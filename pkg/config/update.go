package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Enrich.Fill, Enrich.Force).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Data.Roster
	if s != "" {
		res = append(res, OptDataRoster(s))
	}
	s = c.Data.Register
	if s != "" {
		res = append(res, OptDataRegister(s))
	}
	s = c.Data.People
	if s != "" {
		res = append(res, OptDataPeople(s))
	}
	s = c.Data.Output
	if s != "" {
		res = append(res, OptDataOutput(s))
	}

	s = c.Tracking.BaseURL
	if s != "" {
		res = append(res, OptTrackingBaseURL(s))
	}
	if c.Tracking.RPS > 0 {
		res = append(res, OptTrackingRPS(c.Tracking.RPS))
	}
	i = c.Tracking.Burst
	if i > 0 {
		res = append(res, OptTrackingBurst(i))
	}
	i = c.Tracking.TimeoutSec
	if i > 0 {
		res = append(res, OptTrackingTimeoutSec(i))
	}
	res = append(res, OptTrackingRetries(c.Tracking.Retries))
	s = c.Tracking.UserAgent
	if s != "" {
		res = append(res, OptTrackingUserAgent(s))
	}
	if c.Tracking.DisableCache {
		res = append(res, OptTrackingDisableCache(true))
	}

	i = c.Enrich.CutoffYear
	if i > 0 {
		res = append(res, OptEnrichCutoffYear(i))
	}
	if len(c.Enrich.PlayoffGameTypes) > 0 {
		res = append(res,
			OptEnrichPlayoffGameTypes(slices.Clone(c.Enrich.PlayoffGameTypes)))
	}
	s = c.Enrich.RegularGameType
	if s != "" {
		res = append(res, OptEnrichRegularGameType(s))
	}
	if len(c.Enrich.PitchTypes) > 0 {
		res = append(res,
			OptEnrichPitchTypes(slices.Clone(c.Enrich.PitchTypes)))
	}
	i = c.Enrich.PauseEvery
	if i > 0 {
		res = append(res, OptEnrichPauseEvery(i))
	}
	i = c.Enrich.PauseMs
	if i > 0 {
		res = append(res, OptEnrichPauseMs(i))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.Metrics.Textfile
	if s != "" {
		res = append(res, OptMetricsTextfile(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegative(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %v", name, f)
	}
	return res
}

func isValidYear(name string, i int) bool {
	res := i >= 1871 && i <= 2100
	if !res {
		gn.Warn("<em>%s</em> is not a plausible season, ignoring %d", name, i)
	}
	return res
}

func isValidCodes(name string, codes []string) bool {
	res := len(codes) > 0
	if !res {
		gn.Warn("<em>%s</em> needs at least one code, ignoring", name)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid http(s) URL, ignoring '%s'", name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
