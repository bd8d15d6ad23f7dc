// Package ioload turns CSV bulk-export files or API search results into
// the internal dataset and persists processed datasets between commands.
package ioload

import (
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/inat"
	"github.com/gnames/inatrank/pkg/inatrank"
)

type ioload struct {
	cfg    *config.Config
	client inat.Client
}

// New creates a Loader backed by the given API client. The client may be
// nil when only CSV exports and the processed-dataset file are used.
func New(cfg *config.Config, client inat.Client) inatrank.Loader {
	res := ioload{cfg: cfg, client: client}
	return &res
}
