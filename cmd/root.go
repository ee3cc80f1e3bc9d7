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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/pitchwise/tjdelta/internal/iofs"
	"github.com/pitchwise/tjdelta/internal/iologger"
	app "github.com/pitchwise/tjdelta/pkg"
	"github.com/pitchwise/tjdelta/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "tjdelta",
		Short:   "Tjdelta enriches a pitcher injury roster with season metrics",
		Long: `Tjdelta adds pre- and post-injury season metrics to a roster of
pitchers who had Tommy John surgery.

For every pitcher and injury year it computes metrics for four seasons
before and four seasons after the injury (T-4 ... T+4):
  - pitch counts, velocity and spin rate from pitch tracking (2015 on)
  - games started, saves and relief appearances from the Lahman register
  - pitch mix shares for configured pitch types

Typical workflow:
  tjdelta resolve   find tracking and register IDs of roster pitchers
  tjdelta enrich    compute metrics and save the enriched table
  tjdelta fill      retry cells that are still missing
  tjdelta export    copy the enriched table to PostgreSQL

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TJDELTA_*, e.g. TJDELTA_JOBS_NUMBER)
  3. Config file (~/.config/tjdelta/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "tjdelta version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for tjdelta")

	rootCmd.PersistentFlags().BoolP("quiet", "q", false,
		"do not print progress and summaries")

	rootCmd.AddCommand(
		getResolveCmd(),
		getEnrichCmd(),
		getFillCmd(),
		getExportCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureIdentityFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Log of the bootstrap phase is kept, the configured logger appends.
	err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if !quiet(cmd) {
		gn.Info(
			"Configuration files are available at <em>%s</em>",
			config.ConfigDir(homeDir),
		)
	}
	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("TJDELTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data files
	v.BindEnv("data.roster", "TJDELTA_DATA_ROSTER")
	v.BindEnv("data.register", "TJDELTA_DATA_REGISTER")
	v.BindEnv("data.people", "TJDELTA_DATA_PEOPLE")
	v.BindEnv("data.output", "TJDELTA_DATA_OUTPUT")

	// Pitch tracking
	v.BindEnv("tracking.base_url", "TJDELTA_TRACKING_BASE_URL")
	v.BindEnv("tracking.rps", "TJDELTA_TRACKING_RPS")
	v.BindEnv("tracking.burst", "TJDELTA_TRACKING_BURST")
	v.BindEnv("tracking.timeout_sec", "TJDELTA_TRACKING_TIMEOUT_SEC")
	v.BindEnv("tracking.retries", "TJDELTA_TRACKING_RETRIES")
	v.BindEnv("tracking.user_agent", "TJDELTA_TRACKING_USER_AGENT")
	v.BindEnv("tracking.disable_cache", "TJDELTA_TRACKING_DISABLE_CACHE")

	// Enrichment
	v.BindEnv("enrich.cutoff_year", "TJDELTA_ENRICH_CUTOFF_YEAR")
	v.BindEnv("enrich.playoff_game_types", "TJDELTA_ENRICH_PLAYOFF_GAME_TYPES")
	v.BindEnv("enrich.regular_game_type", "TJDELTA_ENRICH_REGULAR_GAME_TYPE")
	v.BindEnv("enrich.pitch_types", "TJDELTA_ENRICH_PITCH_TYPES")
	v.BindEnv("enrich.pause_every", "TJDELTA_ENRICH_PAUSE_EVERY")
	v.BindEnv("enrich.pause_ms", "TJDELTA_ENRICH_PAUSE_MS")

	// Database configuration
	v.BindEnv("database.host", "TJDELTA_DATABASE_HOST")
	v.BindEnv("database.port", "TJDELTA_DATABASE_PORT")
	v.BindEnv("database.user", "TJDELTA_DATABASE_USER")
	v.BindEnv("database.password", "TJDELTA_DATABASE_PASSWORD")
	v.BindEnv("database.database", "TJDELTA_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "TJDELTA_DATABASE_SSL_MODE")

	// Log configuration
	v.BindEnv("log.level", "TJDELTA_LOG_LEVEL")
	v.BindEnv("log.format", "TJDELTA_LOG_FORMAT")
	v.BindEnv("log.destination", "TJDELTA_LOG_DESTINATION")

	// Metrics
	v.BindEnv("metrics.textfile", "TJDELTA_METRICS_TEXTFILE")

	// General configuration
	v.BindEnv("jobs_number", "TJDELTA_JOBS_NUMBER")

	v.AutomaticEnv()
}
