// Package ioreport renders ranked observations for human review: an HTML
// viewer grouping observations into rows of photo cards, and a minified
// JSON export with one minimal record per observation.
package ioreport

import (
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/inatrank"
	"github.com/gnames/inatrank/pkg/ranking"
)

//go:embed observation_viewer.html
var viewerHTML string

type ioreport struct {
	cfg     *config.Config
	weights ranking.Weights
}

func New(cfg *config.Config, weights ranking.Weights) inatrank.Reporter {
	res := ioreport{cfg: cfg, weights: weights}
	return &res
}

// observationView is one photo card of the HTML report.
type observationView struct {
	ID            int64
	URI           string
	PhotoURL      string
	TaxonName     string
	UserLogin     string
	ObservedOn    string
	PlaceGuess    string
	RankingValues string
}

// HTML renders the observation viewer. Rows without a technical image
// quality score have not been through the full pipeline and are omitted;
// top and bottom settings slice the ranked dataset before rendering.
func (r *ioreport) HTML(ds dataset.Dataset) error {
	ds = subset(ds, r.cfg.Report.Top, r.cfg.Report.Bottom)

	views := make([]observationView, ds.Len())
	for i, row := range ds {
		views[i] = r.view(row)
	}
	chunks := chunk(views, r.cfg.Report.ChunkSize)

	tmpl, err := template.New("viewer").Parse(viewerHTML)
	if err != nil {
		return TemplateError(err)
	}

	var b strings.Builder
	data := struct{ ObservationChunks [][]observationView }{chunks}
	if err = tmpl.Execute(&b, data); err != nil {
		return TemplateError(err)
	}

	path := r.cfg.ReportFile()
	body := minifyHTML(b.String())
	if err = os.WriteFile(path, []byte(body), 0644); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Generated observation report",
		"path", path, "observations", ds.Len())
	return nil
}

func (r *ioreport) view(row dataset.Row) observationView {
	return observationView{
		ID:            row.Int("id"),
		URI:           fmt.Sprintf("https://www.inaturalist.org/observations/%d", row.Int("id")),
		PhotoURL:      row.String("photo.url"),
		TaxonName:     taxonName(row),
		UserLogin:     row.String("user.login"),
		ObservedOn:    row.String("observed_on"),
		PlaceGuess:    row.String("place_guess"),
		RankingValues: r.rankingValues(row),
	}
}

// rankingValues formats the rank score and every weighted column for the
// hover tooltip, in a stable order.
func (r *ioreport) rankingValues(row dataset.Row) string {
	columns := make([]string, 0, len(r.weights.Columns)+1)
	for col := range r.weights.Columns {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	columns = append([]string{ranking.RankColumn}, columns...)

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s: %.3f", col, row.Float(col))
	}
	return strings.Join(parts, ", ")
}

// taxonName formats a taxon with its common name when one is known,
// e.g. "Araneus diadematus (Garden Spider)".
func taxonName(row dataset.Row) string {
	name := row.String("taxon.name")
	common := row.String("taxon.preferred_common_name")
	if common == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, common)
}

// subset drops unscored rows and slices the top or bottom of the ranked
// dataset. Top wins when both are set.
func subset(ds dataset.Dataset, top, bottom int) dataset.Dataset {
	ds = ds.Filter(func(row dataset.Row) bool {
		return row.Float("photo.iqa_technical") != 0
	})
	switch {
	case top > 0:
		return ds.Top(top)
	case bottom > 0:
		return ds.Bottom(bottom)
	default:
		return ds
	}
}

func chunk(views []observationView, size int) [][]observationView {
	if size < 1 {
		size = 1
	}
	var res [][]observationView
	for i := 0; i < len(views); i += size {
		end := i + size
		if end > len(views) {
			end = len(views)
		}
		res = append(res, views[i:end])
	}
	return res
}

// minifyHTML collapses the template's indentation whitespace.
func minifyHTML(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
