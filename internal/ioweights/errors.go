package ioweights

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// WeightsConfigError creates an error for an unreadable or invalid
// weights.yaml file.
func WeightsConfigError(path string, err error) error {
	msg := `Cannot use ranking weights from <em>%s</em>

<em>How to fix:</em>
  1. Check the file is valid YAML
  2. Every log_scale column must also appear under weights
  3. Delete the file to regenerate the default table`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WeightsConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: weights config: %w",
			fn, err),
	}
}
