package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/inatrank/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "inatrank"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "inatrank"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "inatrank", "logs"),
		},
		{
			msg: "data dir",
			fn:  config.DefaultDataDir,
			res: filepath.Join(tempHome, ".local", "share", "inatrank", "data"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "https://api.inaturalist.org/v1", cfg.API.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.API.Throttle)
		assert.Equal(t, 200, cfg.API.PageSize)
		assert.True(t, cfg.API.WithCache)

		assert.Equal(t, 60, cfg.Load.Days)
		assert.Equal(t, "original", cfg.Images.TargetSize)
		assert.False(t, cfg.Images.Concurrent)
		assert.Equal(t, 4, cfg.Report.ChunkSize)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, "Arachnida", cfg.IconicTaxon)
	})
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "sets base URL and strips trailing slash",
			opt:  config.OptAPIBaseURL("https://example.org/v1/"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://example.org/v1", cfg.API.BaseURL)
			},
		},
		{
			name: "rejects empty base URL",
			opt:  config.OptAPIBaseURL("  "),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://api.inaturalist.org/v1", cfg.API.BaseURL)
			},
		},
		{
			name: "sets throttle",
			opt:  config.OptAPIThrottle(500 * time.Millisecond),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 500*time.Millisecond, cfg.API.Throttle)
			},
		},
		{
			name: "rejects negative throttle",
			opt:  config.OptAPIThrottle(-time.Second),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 3*time.Second, cfg.API.Throttle)
			},
		},
		{
			name: "caps page size at API maximum",
			opt:  config.OptAPIPageSize(1000),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 200, cfg.API.PageSize)
			},
		},
		{
			name: "sets target size",
			opt:  config.OptImagesTargetSize("Medium"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "medium", cfg.Images.TargetSize)
			},
		},
		{
			name: "rejects unknown target size",
			opt:  config.OptImagesTargetSize("huge"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "original", cfg.Images.TargetSize)
			},
		},
		{
			name: "sets iconic taxon",
			opt:  config.OptIconicTaxon("Aves"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "Aves", cfg.IconicTaxon)
			},
		},
		{
			name: "rejects unrecognized iconic taxon",
			opt:  config.OptIconicTaxon("Arachnid"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "Arachnida", cfg.IconicTaxon)
			},
		},
		{
			name: "rejects invalid log level",
			opt:  config.OptLogLevel("loud"),
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			tt.check(t, cfg)
		})
	}
}

func TestDataPaths(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir("/data"),
		config.OptIconicTaxon("Aves"),
	})

	assert.Equal(t, filepath.Join("/data", "observations.json"), cfg.ObservationsFile())
	assert.Equal(t, filepath.Join("/data", "observations_min.json"), cfg.MinifiedFile())
	assert.Equal(t, filepath.Join("/data", "report.html"), cfg.ReportFile())
	assert.Equal(t, filepath.Join("/data", "images"), cfg.ImageDir())
	assert.Equal(t, filepath.Join("/data", "user_stats_aves.json"), cfg.UserStatsFile())
	assert.Len(t, cfg.IQAReportFiles(), 2)
}

func TestToOptionsRoundTrip(t *testing.T) {
	orig := config.New()
	orig.Update([]config.Option{
		config.OptAPIThrottle(time.Second),
		config.OptIconicTaxon("Insecta"),
		config.OptImagesConcurrent(true),
	})

	clone := config.New()
	clone.Update(orig.ToOptions())

	assert.Equal(t, orig.API, clone.API)
	assert.Equal(t, orig.Images, clone.Images)
	assert.Equal(t, orig.Report.ChunkSize, clone.Report.ChunkSize)
	assert.Equal(t, orig.IconicTaxon, clone.IconicTaxon)
}
