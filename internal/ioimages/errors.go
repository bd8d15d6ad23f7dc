package ioimages

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// DirError creates an error for an image directory that cannot be
// created or written.
func DirError(dir string, err error) error {
	msg := `Cannot use image directory <em>%s</em>

<em>How to fix:</em>
  1. Check the data directory is writable
  2. Check there is enough disk space`

	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImageDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: image dir: %w",
			fn, err),
	}
}
