package ioload

import (
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/inatrank/pkg/dataset"
)

// LoadProcessed reads the processed dataset saved by a previous command.
// A missing file is an error: each command expects the previous stage to
// have run.
func (l *ioload) LoadProcessed() (dataset.Dataset, error) {
	path := l.cfg.ObservationsFile()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadDatasetError(path, err)
	}

	var res dataset.Dataset
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, LoadDatasetError(path, err)
	}

	normalizeTypes(res)
	slog.Info("Loaded processed observations", "path", path, "rows", res.Len())
	return res, nil
}

// SaveProcessed writes the dataset to the observations file, replacing any
// previous version.
func (l *ioload) SaveProcessed(ds dataset.Dataset) error {
	path := l.cfg.ObservationsFile()

	enc := gnfmt.GNjson{}
	data, err := enc.Encode(ds)
	if err != nil {
		return SaveDatasetError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return SaveDatasetError(path, err)
	}

	slog.Info("Saved processed observations", "path", path, "rows", ds.Len())
	return nil
}

// normalizeTypes re-applies the coercion table after a JSON round trip,
// which turns every number into float64. Integer columns go back to int64
// so IDs compare and format correctly.
func normalizeTypes(ds dataset.Dataset) {
	for _, row := range ds {
		for column, value := range row {
			kind, ok := columnTypes[column]
			if !ok || kind != kindInt {
				continue
			}
			if f, ok := value.(float64); ok {
				row[column] = int64(f)
			}
		}
	}
}
