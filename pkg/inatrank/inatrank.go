// Package inatrank defines the high-level contracts of the backlog
// ranking toolkit. Implementations live in internal/io* packages; the
// ranking computation itself is pure and lives in pkg/ranking.
package inatrank

import (
	"context"

	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inat"
)

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags.
	Build = "n/a"
)

// Loader turns CSV export files or API responses into a dataset with
// normalized column names and types, and persists processed datasets
// between commands.
type Loader interface {
	// FromExports loads and concatenates CSV bulk-export files matched
	// by the configured glob pattern.
	FromExports() (dataset.Dataset, error)

	// FromAPI queries recent unidentified observations for the
	// configured iconic taxon.
	FromAPI(ctx context.Context) (dataset.Dataset, error)

	// Refresh fetches remote changes for observations updated since the
	// dataset was built and merges them in by observation ID.
	Refresh(ctx context.Context, ds dataset.Dataset) error

	// LoadProcessed reads the processed dataset from disk. A missing
	// file is a fatal error for the run.
	LoadProcessed() (dataset.Dataset, error)

	// SaveProcessed writes the processed dataset to disk.
	SaveProcessed(ds dataset.Dataset) error
}

// Enricher fetches per-observer statistics, resumably.
type Enricher interface {
	// FetchAll returns statistics for the given observers, fetching
	// only those missing from the checkpoint file. Identifiers should
	// arrive ordered by descending impact (observation count in the
	// current dataset). Embedded profiles spare one API call per user.
	//
	// On any failure, accumulated results are checkpointed before the
	// error returns; a re-run resumes where the previous one stopped.
	FetchAll(
		ctx context.Context,
		userIDs []int64,
		embedded map[int64]*inat.User,
	) (map[int64]*inat.User, error)

	// Enrich merges fetched statistics into the dataset by observer ID.
	Enrich(ctx context.Context, ds dataset.Dataset) error
}

// Downloader fetches observation photos into a local directory.
type Downloader interface {
	// Download fetches every URL that is not already present locally.
	// Individual failures are logged and skipped; only setup problems
	// (e.g. an unwritable image directory) abort the whole run.
	Download(ctx context.Context, urls []string) error
}

// Reporter renders ranked observations for human review.
type Reporter interface {
	// HTML writes the observation viewer report.
	HTML(ds dataset.Dataset) error

	// Minified writes the curated JSON export with one minimal record
	// per observation.
	Minified(ds dataset.Dataset) error
}
