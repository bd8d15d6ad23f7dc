package ioreport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// TemplateError creates an error for a report template that cannot be
// parsed or executed.
func TemplateError(err error) error {
	msg := `Cannot render the observation report template`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportTemplateError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: report template: %w",
			fn, err),
	}
}

// WriteError creates an error for a failed report file write.
func WriteError(path string, err error) error {
	msg := `Cannot write report to <em>%s</em>

<em>How to fix:</em>
  1. Check the data directory is writable
  2. Check there is enough disk space`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: report write: %w",
			fn, err),
	}
}

// MinifiedError creates an error for a failed minified export.
func MinifiedError(path string, err error) error {
	msg := `Cannot write minified observations to <em>%s</em>

<em>How to fix:</em>
  1. Check the data directory is writable
  2. Check there is enough disk space`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MinifiedExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: minified export: %w",
			fn, err),
	}
}
