package ioapi

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
)

// RequestError creates an error for a failed network call.
func RequestError(path string, err error) error {
	msg := `API request to <em>%s</em> failed

<em>Possible causes:</em>
  - No network connectivity
  - api.inaturalist.org is unreachable`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.APIRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request %s: %w", fn, path, err),
	}
}

// StatusError creates an error for a non-2xx API response.
func StatusError(path string, status int) error {
	msg := `API request to <em>%s</em> returned status <em>%d</em>

Status 429 means the request-rate budget was exceeded; re-run later or
increase the throttle delay.`

	vars := []any{path, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.APIStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: request %s: status %d",
			fn, path, status),
	}
}

// DecodeError creates an error for an unparseable API response.
func DecodeError(path string, err error) error {
	msg := "Cannot decode API response from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.APIDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: decode %s: %w", fn, path, err),
	}
}
