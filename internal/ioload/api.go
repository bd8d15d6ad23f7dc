package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inat"
)

// FromAPI queries all recent unidentified observations for the configured
// iconic taxon and saves the flattened result as the processed dataset.
func (l *ioload) FromAPI(ctx context.Context) (dataset.Dataset, error) {
	since := time.Now().AddDate(0, 0, -l.cfg.Load.Days)
	params := inat.SearchParams{
		IconicTaxa:    l.cfg.IconicTaxon,
		QualityGrade:  "needs_id",
		ObservedSince: since,
		PerPage:       l.cfg.API.PageSize,
	}

	slog.Info("Querying unidentified observations",
		"iconic_taxon", l.cfg.IconicTaxon, "days", l.cfg.Load.Days)

	obs, err := l.client.AllObservations(ctx, params)
	if err != nil {
		return nil, err
	}

	res := make(dataset.Dataset, len(obs))
	for i := range obs {
		res[i] = obs[i].Row()
	}

	if err = l.SaveProcessed(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Refresh fetches remote changes for observations updated since the
// newest record in ds and merges them in by observation ID. Rows whose
// observations were not updated remotely stay untouched.
func (l *ioload) Refresh(ctx context.Context, ds dataset.Dataset) error {
	if ds.Len() == 0 {
		return nil
	}

	var lastUpdated time.Time
	for _, row := range ds {
		t, err := time.Parse(time.RFC3339, row.String("updated_at"))
		if err == nil && t.After(lastUpdated) {
			lastUpdated = t
		}
	}

	ids := make([]int64, 0, ds.Len())
	for _, row := range ds {
		if id := row.Int("id"); id != 0 {
			ids = append(ids, id)
		}
	}

	slog.Info("Fetching remote updates",
		"observations", len(ids), "updated_since", lastUpdated)

	obs, err := l.client.AllObservations(ctx, inat.SearchParams{
		IDs:          ids,
		UpdatedSince: lastUpdated,
		PerPage:      l.cfg.API.PageSize,
	})
	if err != nil {
		return err
	}

	updates := make(dataset.Dataset, len(obs))
	for i := range obs {
		updates[i] = obs[i].Row()
	}
	ds.MergeByID(updates)

	slog.Info("Merged remote updates", "updated", len(updates))
	return nil
}
