package ioreport

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/pkg/dataset"
)

// minifiedObservation is one record of the minified JSON export, meant
// for lightweight external viewers.
type minifiedObservation struct {
	ID    int64  `json:"id"`
	Taxon string `json:"taxon"`
	Photo string `json:"photo"`
}

// Minified writes the curated JSON export: observation ID, a one-line
// taxon label and the photo base URL, in rank order.
func (r *ioreport) Minified(ds dataset.Dataset) error {
	records := make([]minifiedObservation, ds.Len())
	for i, row := range ds {
		records[i] = minifiedObservation{
			ID:    row.Int("id"),
			Taxon: taxonLabel(row),
			Photo: photoBase(row.String("photo.url")),
		}
	}

	enc := gnfmt.GNjson{}
	data, err := enc.Encode(records)
	if err != nil {
		return MinifiedError(r.cfg.MinifiedFile(), err)
	}

	path := r.cfg.MinifiedFile()
	if err = os.WriteFile(path, data, 0644); err != nil {
		return MinifiedError(path, err)
	}

	slog.Info("Saved minified observations",
		"path", path, "observations", len(records))
	return nil
}

// taxonLabel renders "Genus: Araneus", with the taxonomic rank
// title-cased.
func taxonLabel(row dataset.Row) string {
	rank := row.String("taxon.rank")
	if rank != "" {
		rank = strings.ToUpper(rank[:1]) + rank[1:]
	}
	return fmt.Sprintf("%s: %s", rank, row.String("taxon.name"))
}

// photoBase strips the size-variant file name so any size can be derived
// from the result.
func photoBase(url string) string {
	i := strings.LastIndex(url, "/")
	if i < 0 {
		return url
	}
	return url[:i]
}
