package ioload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// NoExportsError creates an error for a glob pattern that matched no CSV
// export files.
func NoExportsError(pattern string, err error) error {
	msg := `No CSV export files match <em>%s</em>

<em>How to fix:</em>
  1. Download a CSV export from inaturalist.org/observations/export
  2. Place it in the data directory
  3. Or adjust the export glob pattern in the config`

	vars := []any{pattern}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = fmt.Errorf("no files matched")
	}
	return &gn.Error{
		Code: errcode.LoadNoExportsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: exports glob %q: %w",
			fn, pattern, err),
	}
}

// CSVError creates an error for an unreadable or malformed CSV export.
func CSVError(path string, err error) error {
	msg := `Cannot read CSV export <em>%s</em>

<em>How to fix:</em>
  1. Check the file is a CSV export from iNaturalist
  2. Re-download the export if it is truncated`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadCSVError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: csv export: %w",
			fn, err),
	}
}

// LoadDatasetError creates an error for a missing or unreadable processed
// observations file.
func LoadDatasetError(path string, err error) error {
	msg := `Cannot load processed observations from <em>%s</em>

<em>How to fix:</em>
  1. Run <em>inatrank load</em> first to create the dataset
  2. Check the file was not removed or truncated`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadDatasetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: load dataset: %w",
			fn, err),
	}
}

// SaveDatasetError creates an error for a failed dataset write.
func SaveDatasetError(path string, err error) error {
	msg := `Cannot save processed observations to <em>%s</em>

<em>How to fix:</em>
  1. Check the data directory exists and is writable
  2. Check there is enough disk space`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SaveDatasetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: save dataset: %w",
			fn, err),
	}
}
