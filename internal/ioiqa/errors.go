package ioiqa

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// ReportError creates an error for a malformed IQA report file.
func ReportError(path string, err error) error {
	msg := `Cannot read image quality report <em>%s</em>

<em>How to fix:</em>
  1. Check the file is a JSON array of image scores
  2. Re-run the IQA model to regenerate it`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IQAReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: iqa report: %w",
			fn, err),
	}
}
