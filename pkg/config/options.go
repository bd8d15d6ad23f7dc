package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/inat"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptAPIBaseURL sets the root URL of the iNaturalist API.
func OptAPIBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidString("API Base URL", s) {
			c.API.BaseURL = s
		}
	}
}

// OptAPIThrottle sets the fixed delay inserted after every API call.
func OptAPIThrottle(d time.Duration) Option {
	return func(c *Config) {
		if d <= 0 {
			gn.Warn("<em>API Throttle</em> has to be positive, ignoring %s", d)
			return
		}
		c.API.Throttle = d
	}
}

// OptAPIPageSize sets the number of records requested per page.
func OptAPIPageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("API Page Size", i) {
			c.API.PageSize = min(i, 200)
		}
	}
}

// OptAPIWithCache enables or disables the local HTTP response cache.
func OptAPIWithCache(b bool) Option {
	return func(c *Config) {
		c.API.WithCache = b
	}
}

// OptLoadDays limits API queries to observations from the last N days.
// Runtime-only field - not in ToOptions().
func OptLoadDays(i int) Option {
	return func(c *Config) {
		if isValidInt("Load Days", i) {
			c.Load.Days = i
		}
	}
}

// OptLoadExportGlob sets the glob pattern matching CSV export files.
// Runtime-only field - not in ToOptions().
func OptLoadExportGlob(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Glob", s) {
			c.Load.ExportGlob = s
		}
	}
}

// OptImagesTargetSize sets the photo size variant to download.
// Valid values: "square", "small", "medium", "large", "original".
func OptImagesTargetSize(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Images.TargetSize", s) {
			c.Images.TargetSize = s
		}
	}
}

// OptImagesConcurrent allows photo downloads to run in parallel.
func OptImagesConcurrent(b bool) Option {
	return func(c *Config) {
		c.Images.Concurrent = b
	}
}

// OptReportChunkSize sets the number of observations per report row.
func OptReportChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Report Chunk Size", i) {
			c.Report.ChunkSize = i
		}
	}
}

// OptReportTop selects the N highest-ranked observations.
// Runtime-only field - not in ToOptions().
func OptReportTop(i int) Option {
	return func(c *Config) {
		if i > 0 {
			c.Report.Top = i
		}
	}
}

// OptReportBottom selects the N lowest-ranked observations.
// Runtime-only field - not in ToOptions().
func OptReportBottom(i int) Option {
	return func(c *Config) {
		if i > 0 {
			c.Report.Bottom = i
		}
	}
}

// OptIconicTaxon sets the iconic taxon scoping queries and user stats.
// The value must be one of the iconic taxa recognized by iNaturalist;
// anything else is rejected here so a typo cannot silently widen the
// observer statistics to all taxa.
func OptIconicTaxon(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if !isValidString("Iconic Taxon", s) {
			return
		}
		if _, ok := inat.IconicTaxonID(s); !ok {
			var lines []string
			for _, v := range inat.IconicTaxaNames() {
				lines = append(lines, fmt.Sprintf("  * %s", v))
			}
			gn.Warn(
				"<em>Iconic Taxon</em> does not support '%s' as a value. "+
					"Valid values are: \n%s\nIgnoring...",
				s, strings.Join(lines, "\n"),
			)
			return
		}
		c.IconicTaxon = s
	}
}

// OptDataDir sets the directory for datasets, checkpoints and reports.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Directory", s) {
			c.DataDir = s
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
// Valid values: "json", "text".
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

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Images.TargetSize": {"square": s, "small": s, "medium": s,
			"large": s, "original": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
