package cmd

import (
	"log/slog"

	"github.com/gnames/inatrank/internal/ioapi"
	"github.com/gnames/inatrank/internal/iocache"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/inat"
	"github.com/spf13/cobra"
)

// subsetFlags registers the --top/--bottom pair shared by the commands
// that operate on a slice of the ranked dataset.
func subsetFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("top", "t", 0,
		"use only the N highest-ranked observations")
	cmd.Flags().IntP("bottom", "b", 0,
		"use only the N lowest-ranked observations")
}

// applySubsetFlags copies --top/--bottom into the config.
func applySubsetFlags(cmd *cobra.Command) {
	top, _ := cmd.Flags().GetInt("top")
	bottom, _ := cmd.Flags().GetInt("bottom")
	cfg.Update([]config.Option{
		config.OptReportTop(top),
		config.OptReportBottom(bottom),
	})
}

// apiClient builds the throttled API client, with the HTTP response
// cache attached unless caching is disabled. The returned closer is nil
// when there is no cache to close.
func apiClient() (inat.Client, func(), error) {
	if !cfg.API.WithCache {
		return ioapi.New(cfg, nil), nil, nil
	}

	cache, err := iocache.Open(config.HTTPCacheFilePath(cfg.HomeDir))
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := cache.Close(); err != nil {
			slog.Warn("Cannot close HTTP cache", "error", err)
		}
	}
	return ioapi.New(cfg, cache), closer, nil
}
