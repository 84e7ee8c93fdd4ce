package cachefile

import (
	"fmt"
	"strings"

	"github.com/vk/filetemp/internal/filetype"
)

// Read parses a whole cache-file buffer into the ordered collection of
// bundles it contains, regardless of their file type; filtering is the
// caller's business, since the full collection may be rewritten no
// matter which file type this run processes. validNames is the set of
// option names considered valid inside sections; file_type and the
// cache-control names are always recognized. The first malformed line
// aborts the entire read.
func Read(data []byte, validNames []string) (Collection, error) {
	var coll Collection
	var current Bundle
	inSection := false

	commit := func() error {
		if current.FileType == filetype.Unknown {
			return fmt.Errorf("%w: file type not specified for cache %q", ErrParse, current.Name)
		}
		coll = append(coll, current)
		current = Bundle{}
		return nil
	}

	for num, raw := range strings.Split(string(data), "\n") {
		lineNum := num + 1
		line := strings.TrimSuffix(raw, "\r")

		// A blank line terminates the open section, if any.
		if line == "" {
			if inSection {
				if err := commit(); err != nil {
					return nil, err
				}
				inSection = false
			}
			continue
		}

		parsed, err := parseLine(validNames, lineNum, line)
		if err != nil {
			return nil, err
		}

		switch parsed.kind {
		case lineSection:
			if inSection {
				return nil, fmt.Errorf("%w: section %q not terminated before %q at line %d",
					ErrParse, current.Name, parsed.name, lineNum)
			}
			current = Bundle{Name: parsed.name}
			inSection = true

		case lineFileType:
			if !inSection {
				return nil, fmt.Errorf("%w: invalid content in config cache file: %q", ErrParse, line)
			}
			if parsed.fileType == filetype.Unknown {
				return nil, fmt.Errorf("%w: invalid file type %q for cache %q",
					ErrParse, parsed.content, current.Name)
			}
			current.FileType = parsed.fileType

		case lineOption:
			if !inSection {
				return nil, fmt.Errorf("%w: invalid content in config cache file: %q", ErrParse, line)
			}
			current.Options = append(current.Options, Pair{Name: parsed.name, Content: parsed.content})

		case lineDiscard:
			// Cache-control metadata from an older build; dropped.
		}
	}

	// End of input closes an open section exactly like a blank line.
	if inSection {
		if err := commit(); err != nil {
			return nil, err
		}
	}
	return coll, nil
}
