package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/filetemp/internal/filetype"
)

// ErrMissingArgument reports required options that were never supplied.
// All missing names are aggregated into one error so the user sees a
// single readable report instead of one failure per option.
var ErrMissingArgument = errors.New("missing required argument(s)")

// AssertRequired scans all entries for ft in precedence order. Unset
// required entries are collected into one ErrMissingArgument; unset
// entries with a default get the default written into vals. Entries
// already supplied are left untouched.
func (r *Registry) AssertRequired(ft filetype.FileType, vals Values) error {
	var missing []string
	for _, e := range r.EntriesFor(ft) {
		if e.State != SupplyNone {
			continue
		}
		if e.Option.Required {
			missing = append(missing, e.Option.Name)
			continue
		}
		if e.Option.HasDefault && vals.SetIfAbsent(e.Option.Name, e.Option.Default) {
			e.State = SupplyDefaulted
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
	}
	return nil
}
