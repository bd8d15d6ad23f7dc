// Package config provides configuration management for iNatRank.
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
//   - API: base_url, throttle, page_size, with_cache
//   - Images: target_size, concurrent
//   - Report: chunk_size
//   - Log: level, format, destination
//   - General: iconic_taxon, data_dir
//
// Runtime-only fields (CLI flags only):
//   - Report.Top, Report.Bottom, Load.Days, Load.ExportGlob (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use INATRANK_ prefix with underscores for nesting:
//
//	INATRANK_API_BASE_URL=https://api.inaturalist.org/v1
//	INATRANK_API_THROTTLE=3s
//	INATRANK_ICONIC_TAXON=Arachnida
//	INATRANK_LOG_LEVEL=info
package config

import (
	"time"
)

// Config represents the complete iNatRank configuration.
type Config struct {
	// API contains settings for the iNaturalist API client.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Load contains settings specific to the load command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// Images contains settings for observation photo downloads.
	Images ImagesConfig `mapstructure:"images" yaml:"images"`

	// Report contains settings for HTML/JSON report generation.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// IconicTaxon is the coarse taxonomic group that scopes queries and
	// per-user statistics (e.g. "Arachnida", "Aves").
	IconicTaxon string `mapstructure:"iconic_taxon" yaml:"iconic_taxon"`

	// DataDir holds datasets, checkpoints, downloaded images and reports.
	// When empty, a default under HomeDir is used (see DataDirPath).
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// APIConfig contains iNaturalist API client parameters.
type APIConfig struct {
	// BaseURL is the root of the iNaturalist API, without a trailing slash.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Throttle is the fixed delay inserted after every API call.
	// iNaturalist asks clients to stay below ~1 request/second; the
	// default of 3s keeps long enrichment runs comfortably under that.
	Throttle time.Duration `mapstructure:"throttle" yaml:"throttle"`

	// PageSize is the number of records requested per page.
	// The API caps it at 200.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// WithCache enables the local HTTP response cache, so repeated runs
	// of the same query do not hit the network again.
	WithCache bool `mapstructure:"with_cache" yaml:"with_cache"`
}

// LoadConfig contains settings specific to the load command.
type LoadConfig struct {
	// Days limits API queries to observations from the last N days.
	// Runtime-only, set per command invocation.
	Days int `mapstructure:"days" yaml:"days"`

	// ExportGlob matches CSV bulk-export files to load instead of
	// querying the API. Runtime-only.
	ExportGlob string `mapstructure:"export_glob" yaml:"export_glob"`
}

// ImagesConfig contains settings for observation photo downloads.
type ImagesConfig struct {
	// TargetSize is the photo size variant to download.
	// Valid values: "square", "small", "medium", "large", "original".
	TargetSize string `mapstructure:"target_size" yaml:"target_size"`

	// Concurrent allows downloads to run in parallel instead of
	// sequentially with a throttle delay between requests.
	Concurrent bool `mapstructure:"concurrent" yaml:"concurrent"`
}

// ReportConfig contains settings for report generation.
type ReportConfig struct {
	// ChunkSize is the number of observations per row in the HTML report.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`

	// Top selects only the N highest-ranked observations. Runtime-only.
	Top int `mapstructure:"top" yaml:"top"`

	// Bottom selects only the N lowest-ranked observations. Runtime-only.
	Bottom int `mapstructure:"bottom" yaml:"bottom"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		API: APIConfig{
			BaseURL:   "https://api.inaturalist.org/v1",
			Throttle:  3 * time.Second,
			PageSize:  200, // API maximum for observation searches
			WithCache: true,
		},
		Load: LoadConfig{
			Days: 60,
		},
		Images: ImagesConfig{
			TargetSize: "original",
		},
		Report: ReportConfig{
			ChunkSize: 4,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		IconicTaxon: "Arachnida",
	}
	return res
}
