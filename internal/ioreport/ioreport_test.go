package ioreport

import (
	"os"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDataDir(t.TempDir())})
	return cfg
}

func testDataset() dataset.Dataset {
	return dataset.Dataset{
		{
			"id":                          int64(101),
			"rank":                        2.5,
			"photo.id":                    int64(555),
			"photo.url":                   "https://static.inaturalist.org/photos/555/medium.jpg",
			"photo.iqa_technical":         5.4,
			"taxon.name":                  "Araneus diadematus",
			"taxon.rank":                  "species",
			"taxon.preferred_common_name": "Garden Spider",
			"user.login":                  "slogger",
			"observed_on":                 "2024-05-01",
			"place_guess":                 "Melbourne",
		},
		{
			"id":                  int64(102),
			"rank":                1.1,
			"photo.id":            int64(556),
			"photo.url":           "https://static.inaturalist.org/photos/556/medium.jpg",
			"photo.iqa_technical": 4.1,
			"taxon.name":          "Sparassidae",
			"taxon.rank":          "family",
			"user.login":          "walker",
		},
		{
			// never went through image scoring, omitted from the report
			"id":         int64(103),
			"rank":       0.0,
			"taxon.name": "Missulena",
			"taxon.rank": "genus",
		},
	}
}

func TestHTML(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, ranking.Default())

	err := r.HTML(testDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ReportFile())
	require.NoError(t, err)
	body := string(data)

	assert.Contains(t, body, "Araneus diadematus (Garden Spider)")
	assert.Contains(t, body, "Sparassidae")
	assert.Contains(t, body, "https://www.inaturalist.org/observations/101")
	assert.Contains(t, body, "rank: 2.500")
	// the unscored observation is left out
	assert.NotContains(t, body, "Missulena")
	// whitespace minification
	assert.NotContains(t, body, "\n")
	assert.NotContains(t, body, "  ")
}

func TestHTMLTop(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.Top = 1
	r := New(cfg, ranking.Default())

	err := r.HTML(testDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ReportFile())
	require.NoError(t, err)

	assert.Contains(t, string(data), "Araneus diadematus")
	assert.NotContains(t, string(data), "Sparassidae")
}

func TestHTMLBottom(t *testing.T) {
	cfg := testConfig(t)
	cfg.Report.Bottom = 1
	r := New(cfg, ranking.Default())

	err := r.HTML(testDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ReportFile())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "Araneus diadematus")
	assert.Contains(t, string(data), "Sparassidae")
}

func TestMinified(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, ranking.Default())

	err := r.Minified(testDataset())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.MinifiedFile())
	require.NoError(t, err)

	var records []minifiedObservation
	enc := gnfmt.GNjson{}
	require.NoError(t, enc.Decode(data, &records))
	require.Len(t, records, 3)

	assert.Equal(t, int64(101), records[0].ID)
	assert.Equal(t, "Species: Araneus diadematus", records[0].Taxon)
	assert.Equal(t,
		"https://static.inaturalist.org/photos/555", records[0].Photo)
	assert.Equal(t, "Family: Sparassidae", records[1].Taxon)
}

func TestChunk(t *testing.T) {
	views := make([]observationView, 10)
	chunks := chunk(views, 4)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4)
	assert.Len(t, chunks[2], 2)

	assert.Nil(t, chunk(nil, 4))
}

func TestTaxonName(t *testing.T) {
	tests := []struct {
		msg  string
		row  dataset.Row
		want string
	}{
		{
			"with common name",
			dataset.Row{
				"taxon.name":                  "Araneus diadematus",
				"taxon.preferred_common_name": "Garden Spider",
			},
			"Araneus diadematus (Garden Spider)",
		},
		{
			"without common name",
			dataset.Row{"taxon.name": "Sparassidae"},
			"Sparassidae",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, taxonName(v.row), v.msg)
	}
}
