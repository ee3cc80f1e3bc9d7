package config

import (
	"slices"
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataRoster sets the path to the cleaned injury roster.
func OptDataRoster(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Roster", s) {
			c.Data.Roster = s
		}
	}
}

// OptDataRegister sets the path to the Lahman Pitching.csv file.
func OptDataRegister(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Register", s) {
			c.Data.Register = s
		}
	}
}

// OptDataPeople sets the path to the Chadwick people register.
func OptDataPeople(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data People", s) {
			c.Data.People = s
		}
	}
}

// OptDataOutput sets the path of the enriched table.
func OptDataOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Output", s) {
			c.Data.Output = s
		}
	}
}

// OptTrackingBaseURL sets the statcast search CSV endpoint.
func OptTrackingBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Tracking BaseURL", s) {
			c.Tracking.BaseURL = s
		}
	}
}

// OptTrackingRPS sets the maximum number of requests per second.
func OptTrackingRPS(f float64) Option {
	return func(c *Config) {
		if isValidFloat("Tracking RPS", f) {
			c.Tracking.RPS = f
		}
	}
}

// OptTrackingBurst sets the token bucket size of the rate limiter.
func OptTrackingBurst(i int) Option {
	return func(c *Config) {
		if isValidInt("Tracking Burst", i) {
			c.Tracking.Burst = i
		}
	}
}

// OptTrackingTimeoutSec sets HTTP timeout in seconds.
func OptTrackingTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Tracking Timeout", i) {
			c.Tracking.TimeoutSec = i
		}
	}
}

// OptTrackingRetries sets the number of retries of a failed request.
func OptTrackingRetries(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Tracking Retries", i) {
			c.Tracking.Retries = i
		}
	}
}

// OptTrackingUserAgent sets the User-Agent header.
func OptTrackingUserAgent(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Tracking UserAgent", s) {
			c.Tracking.UserAgent = s
		}
	}
}

// OptTrackingDisableCache turns the local event cache off or on.
func OptTrackingDisableCache(b bool) Option {
	return func(c *Config) {
		c.Tracking.DisableCache = b
	}
}

// OptEnrichCutoffYear sets the first season covered by pitch tracking.
func OptEnrichCutoffYear(i int) Option {
	return func(c *Config) {
		if isValidYear("Enrich CutoffYear", i) {
			c.Enrich.CutoffYear = i
		}
	}
}

// OptEnrichPlayoffGameTypes sets game-type codes treated as postseason.
func OptEnrichPlayoffGameTypes(ss []string) Option {
	codes := normCodes(ss)
	return func(c *Config) {
		if isValidCodes("Enrich PlayoffGameTypes", codes) {
			c.Enrich.PlayoffGameTypes = codes
		}
	}
}

// OptEnrichRegularGameType sets the regular-season game-type code.
func OptEnrichRegularGameType(s string) Option {
	s = strings.ToUpper(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Enrich RegularGameType", s) {
			c.Enrich.RegularGameType = s
		}
	}
}

// OptEnrichPitchTypes sets pitch-type codes that get a pitch-mix metric.
// Order of codes determines order of the columns.
func OptEnrichPitchTypes(ss []string) Option {
	codes := normCodes(ss)
	return func(c *Config) {
		if isValidCodes("Enrich PitchTypes", codes) {
			c.Enrich.PitchTypes = codes
		}
	}
}

// OptEnrichPauseEvery sets how many subjects are dispatched between pauses.
func OptEnrichPauseEvery(i int) Option {
	return func(c *Config) {
		if isValidInt("Enrich PauseEvery", i) {
			c.Enrich.PauseEvery = i
		}
	}
}

// OptEnrichPauseMs sets the pause length in milliseconds.
// Zero is allowed and disables pauses.
func OptEnrichPauseMs(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Enrich PauseMs", i) {
			c.Enrich.PauseMs = i
		}
	}
}

// OptEnrichFill makes the run reattempt undefined cells.
// Runtime-only field - not in ToOptions().
func OptEnrichFill(b bool) Option {
	return func(c *Config) {
		c.Enrich.Fill = b
	}
}

// OptEnrichForce makes the run recompute defined cells.
// Runtime-only field - not in ToOptions().
func OptEnrichForce(b bool) Option {
	return func(c *Config) {
		c.Enrich.Force = b
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptMetricsTextfile sets the path of Prometheus textfile export.
func OptMetricsTextfile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics Textfile", s) {
			c.Metrics.Textfile = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// normCodes trims and upper-cases codes, dropping empty and repeated ones.
func normCodes(ss []string) []string {
	res := make([]string, 0, len(ss))
	for _, v := range ss {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" || slices.Contains(res, v) {
			continue
		}
		res = append(res, v)
	}
	return res
}
