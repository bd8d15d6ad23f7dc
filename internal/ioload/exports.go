package ioload

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/inatrank/pkg/dataset"
	"github.com/gnames/inatrank/pkg/photos"
)

// FromExports loads every CSV export matched by the configured glob and
// concatenates them into one dataset. Headers are renamed and cells
// coerced according to the column tables; the photo ID is derived from
// the photo URL because exports do not carry it.
func (l *ioload) FromExports() (dataset.Dataset, error) {
	pattern := l.cfg.Load.ExportGlob
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(l.cfg.DataDir, pattern)
	}

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, NoExportsError(pattern, err)
	}
	if len(paths) == 0 {
		return nil, NoExportsError(pattern, nil)
	}

	var res dataset.Dataset
	for _, path := range paths {
		rows, err := loadExport(path)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded CSV export", "path", path, "rows", len(rows))
		res = append(res, rows...)
	}

	slog.Info("Loaded observations from exports",
		"files", len(paths), "rows", res.Len())
	return res, nil
}

func loadExport(path string) (dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CSVError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, CSVError(path, err)
	}
	columns := normalizeHeader(header)

	var res dataset.Dataset
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CSVError(path, err)
		}
		res = append(res, normalizeRecord(columns, record))
	}
	return res, nil
}

// normalizeHeader applies the rename table. Dropped columns become empty
// strings so record fields stay index-aligned.
func normalizeHeader(header []string) []string {
	res := make([]string, len(header))
	for i, h := range header {
		if _, ok := dropColumns[h]; ok {
			continue
		}
		if renamed, ok := renameColumns[h]; ok {
			res[i] = renamed
		} else {
			res[i] = h
		}
	}
	return res
}

func normalizeRecord(columns []string, record []string) dataset.Row {
	row := dataset.Row{}
	for i, value := range record {
		if i >= len(columns) || columns[i] == "" {
			continue
		}
		row[columns[i]] = coerce(columns[i], value)
	}

	if url := row.String("photo.url"); url != "" && !row.Has("photo.id") {
		if id := photos.ID(url); id != "" {
			row["photo.id"] = coerce("photo.id", id)
		}
	}
	return row
}
