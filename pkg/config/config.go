// Package config provides configuration management for tjdelta.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: roster, register, people and output paths
//   - Tracking: base_url, rps, burst, timeout_sec, retries, user_agent,
//     disable_cache
//   - Enrich: cutoff_year, playoff_game_types, regular_game_type,
//     pitch_types, pause_every, pause_ms
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//   - Metrics: textfile
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Enrich.Fill, Enrich.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use TJDELTA_ prefix with underscores for nesting:
//
//	TJDELTA_DATA_ROSTER=data/injuries_clean.csv
//	TJDELTA_TRACKING_RPS=2
//	TJDELTA_LOG_LEVEL=info
//	TJDELTA_JOBS_NUMBER=10
package config

// Config represents the complete tjdelta configuration.
type Config struct {
	// Data contains locations of input and output tables.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Tracking configures the pitch-tracking HTTP source.
	Tracking TrackingConfig `mapstructure:"tracking" yaml:"tracking"`

	// Enrich contains settings of the enrichment run.
	Enrich EnrichConfig `mapstructure:"enrich" yaml:"enrich"`

	// Database contains PostgreSQL connection settings used by export.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// JobsNumber is the number of subjects expanded concurrently.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DataConfig contains paths to the tables tjdelta reads and writes.
type DataConfig struct {
	// Roster is the cleaned injury roster CSV.
	Roster string `mapstructure:"roster" yaml:"roster"`

	// Register is the Lahman Pitching.csv file with season register totals.
	Register string `mapstructure:"register" yaml:"register"`

	// People is the Chadwick Bureau people register used for identity
	// lookups.
	People string `mapstructure:"people" yaml:"people"`

	// Output is the enriched table. If it exists, it is loaded instead of
	// the roster so that previously computed cells are kept.
	Output string `mapstructure:"output" yaml:"output"`
}

// TrackingConfig contains settings of the pitch-tracking source.
type TrackingConfig struct {
	// BaseURL of the statcast search CSV endpoint.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// RPS is the maximum number of requests per second.
	RPS float64 `mapstructure:"rps" yaml:"rps"`

	// Burst is the token bucket size of the rate limiter.
	Burst int `mapstructure:"burst" yaml:"burst"`

	// TimeoutSec is the HTTP timeout of one request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// Retries is the number of repeated attempts after a throttled or
	// failed request.
	Retries int `mapstructure:"retries" yaml:"retries"`

	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// DisableCache turns off the local SQLite cache of pitch events.
	DisableCache bool `mapstructure:"disable_cache" yaml:"disable_cache"`
}

// EnrichConfig contains settings of metric computation.
type EnrichConfig struct {
	// CutoffYear is the first season with pitch-tracking coverage.
	// Tracking-only metrics are undefined for earlier seasons.
	CutoffYear int `mapstructure:"cutoff_year" yaml:"cutoff_year"`

	// PlayoffGameTypes are game-type codes treated as postseason.
	PlayoffGameTypes []string `mapstructure:"playoff_game_types" yaml:"playoff_game_types"`

	// RegularGameType is the game-type code of regular-season games.
	RegularGameType string `mapstructure:"regular_game_type" yaml:"regular_game_type"`

	// PitchTypes are pitch-type codes that get a pitch-mix metric.
	PitchTypes []string `mapstructure:"pitch_types" yaml:"pitch_types"`

	// PauseEvery is the number of dispatched subjects after which the
	// dispatcher pauses.
	PauseEvery int `mapstructure:"pause_every" yaml:"pause_every"`

	// PauseMs is the pause length in milliseconds. Zero disables pauses.
	PauseMs int `mapstructure:"pause_ms" yaml:"pause_ms"`

	// Fill makes the run reattempt undefined cells even when the table
	// already has all metric columns.
	Fill bool `mapstructure:"fill" yaml:"fill"`

	// Force recomputes cells that are already defined.
	Force bool `mapstructure:"force" yaml:"force"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// MetricsConfig describes where run metrics are exported.
type MetricsConfig struct {
	// Textfile is a path for Prometheus text exposition written at the end
	// of a run. Empty value disables the export.
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Data: DataConfig{
			Roster:   "data/injuries_clean.csv",
			Register: "data/lahman/Pitching.csv",
			People:   "data/chadwick/people.csv",
			Output:   "data/pitchers_enriched.csv",
		},
		Tracking: TrackingConfig{
			BaseURL:    "https://baseballsavant.mlb.com/statcast_search/csv",
			RPS:        1,
			Burst:      1,
			TimeoutSec: 60,
			Retries:    0,
			UserAgent:  "tjdelta/0.1 (+https://github.com/pitchwise/tjdelta)",
		},
		Enrich: EnrichConfig{
			CutoffYear:       2015,
			PlayoffGameTypes: []string{"D", "L", "W"},
			RegularGameType:  "R",
			PitchTypes:       []string{"FF", "SI", "SL", "CU", "CH", "FC"},
			PauseEvery:       10,
			PauseMs:          500,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "tjdelta",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: 10,
	}

	return res
}
