// Package ioiqa merges image quality assessment scores into the dataset.
// The scores come from an external IQA model run over the downloaded
// photos; each report file is a JSON array of per-image predictions.
package ioiqa

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/pkg/config"
	"github.com/gnames/inatrank/pkg/dataset"
)

type ioiqa struct {
	cfg *config.Config
}

// IQA merges image quality scores into observation rows.
type IQA interface {
	// Merge loads every IQA report file and writes its scores into the
	// dataset, matched on photo ID. Missing report files are skipped.
	Merge(ds dataset.Dataset) error
}

func New(cfg *config.Config) IQA {
	res := ioiqa{cfg: cfg}
	return &res
}

// score is one record of an IQA report file. Image IDs arrive as strings
// or numbers depending on the model runner.
type score struct {
	ImageID             any     `json:"image_id"`
	MeanScorePrediction float64 `json:"mean_score_prediction"`
}

func (s *ioiqa) Merge(ds dataset.Dataset) error {
	// photo ID → column → score
	combined := make(map[int64]map[string]float64)

	var loaded int
	for _, path := range s.cfg.IQAReportFiles() {
		column, scores, err := loadReport(path)
		if err != nil {
			return err
		}
		if scores == nil {
			slog.Info("No IQA report found, skipping", "path", path)
			continue
		}

		for id, v := range scores {
			if combined[id] == nil {
				combined[id] = make(map[string]float64)
			}
			combined[id][column] = v
		}
		slog.Info("Loaded IQA report",
			"path", path, "column", column, "images", len(scores))
		loaded++
	}
	if loaded == 0 {
		return nil
	}

	var merged int
	for _, row := range ds {
		scores, ok := combined[row.Int("photo.id")]
		if !ok {
			continue
		}
		for column, v := range scores {
			row[column] = v
		}
		merged++
	}
	slog.Info("Merged IQA scores into observations",
		"images", len(combined), "rows", merged)
	return nil
}

// loadReport reads one report file. The score column name derives from
// the file name: iqa_technical.json fills photo.iqa_technical. A missing
// file returns a nil map and no error.
func loadReport(path string) (string, map[int64]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, ReportError(path, err)
	}

	var scores []score
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &scores); err != nil {
		return "", nil, ReportError(path, err)
	}

	base := filepath.Base(path)
	column := "photo." + strings.TrimSuffix(base, filepath.Ext(base))

	res := make(map[int64]float64, len(scores))
	for _, v := range scores {
		id := imageID(v.ImageID)
		if id == 0 {
			continue
		}
		res[id] = v.MeanScorePrediction
	}
	return column, res, nil
}

func imageID(v any) int64 {
	switch id := v.(type) {
	case float64:
		return int64(id)
	case string:
		i, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
