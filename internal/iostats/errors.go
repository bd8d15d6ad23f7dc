package iostats

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/inatrank/pkg/errcode"
	"github.com/gnames/inatrank/pkg/inat"
)

// CheckpointError creates an error for an unreadable or unwritable
// observer stats checkpoint file.
func CheckpointError(path string, err error) error {
	msg := `Cannot use observer stats checkpoint <em>%s</em>

<em>How to fix:</em>
  1. Check the data directory is readable and writable
  2. Delete the file to re-fetch all observer stats`

	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatsCheckpointError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: stats checkpoint: %w",
			fn, err),
	}
}

// BadTaxonError creates an error for an iconic taxon name the API does
// not recognize. Failing before the fetch loop keeps unscoped counts out
// of the checkpoint, which would otherwise never be re-fetched.
func BadTaxonError(name string) error {
	msg := `<em>%s</em> is not an iconic taxon

<em>How to fix:</em> set iconic_taxon to one of:
  %s`

	vars := []any{name, strings.Join(inat.IconicTaxaNames(), ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatsBadTaxonError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown iconic taxon %q",
			fn, name),
	}
}

// FetchError creates an error for a failed observer stats request.
// Accumulated results are checkpointed before this error reaches the
// user, so a re-run resumes instead of starting over.
func FetchError(userID int64, err error) error {
	msg := `Fetching stats for observer <em>%d</em> failed

Partial results were saved; run the command again to resume.`

	vars := []any{userID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatsFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: observer %d: %w",
			fn, userID, err),
	}
}
