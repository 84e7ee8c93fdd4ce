// Package matcher consumes raw command tokens against the option
// registry, producing the name-to-value mapping for the invocation.
package matcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/filetemp/internal/filetype"
	"github.com/vk/filetemp/internal/registry"
)

// optionPrefix introduces a candidate option name. A candidate needs at
// least one character after the prefix.
const optionPrefix = "--"

// ErrInvalidArgument reports a token that matched no defined option.
var ErrInvalidArgument = errors.New("invalid argument")

// Match consumes tokens strictly left to right. A matched flag records
// the true-marker and moves on; a matched non-flag option stores the
// next token verbatim as its value, even if that token looks like
// another option. The grammar has no look-ahead escaping; a literal
// value is what the user asked for. An unmatched candidate aborts with
// ErrInvalidArgument; no partial state is rolled back, the matcher is
// reported, not retried.
func Match(reg *registry.Registry, ft filetype.FileType, tokens []string, vals registry.Values) error {
	awaiting := ""
	for _, token := range tokens {
		if awaiting != "" {
			vals.SetIfAbsent(awaiting, token)
			awaiting = ""
			continue
		}

		var entry *registry.Entry
		if name, ok := candidateName(token); ok {
			entry = reg.Lookup(ft, name)
		}
		if entry == nil {
			return fmt.Errorf("%w: %q", ErrInvalidArgument, token)
		}

		if entry.State == registry.SupplyNone {
			entry.State = registry.SupplySupplied
		}
		if entry.Option.Flag {
			vals.SetIfAbsent(entry.Option.Name, registry.FlagValue)
			continue
		}
		awaiting = entry.Option.Name
	}
	return nil
}

// candidateName strips the option prefix from a token. Tokens without
// the prefix, or with nothing after it, are not candidates.
func candidateName(token string) (string, bool) {
	if !strings.HasPrefix(token, optionPrefix) || len(token) == len(optionPrefix) {
		return "", false
	}
	return token[len(optionPrefix):], true
}
