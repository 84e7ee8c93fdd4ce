package cachefile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/filetemp/internal/filetype"
)

// Cache-control option names. They select a cache to load and name a
// cache to save; persisting them inside a bundle could re-trigger cache
// operations when that bundle is loaded, so the line parser discards
// them instead.
const (
	UseOption    = "use"
	SaveAsOption = "save-as"
)

// FileTypeOption is the reserved pseudo-option carrying a section's
// file type. It is valid on cache lines without being a defined option.
const FileTypeOption = "file_type"

// ErrParse reports a malformed cache-file line or section.
var ErrParse = errors.New("argument cache parse error")

type lineKind int

const (
	// lineSection is a `[name]` header opening a new section.
	lineSection lineKind = iota

	// lineOption is a `name:content` line for a defined option.
	lineOption

	// lineFileType is the distinguished `file_type:<type>` line.
	lineFileType

	// lineDiscard is a cache-control line that must not survive a read.
	lineDiscard
)

type parsedLine struct {
	kind    lineKind
	name    string
	content string

	// fileType is the resolved type for lineFileType results; Unknown
	// when the content named no known type.
	fileType filetype.FileType
}

// parseLine classifies one non-blank cache-file line. lineNum is
// 1-based and only used in error messages.
func parseLine(validNames []string, lineNum int, line string) (parsedLine, error) {
	if strings.HasPrefix(line, "[") {
		return parseSectionHeader(lineNum, line)
	}

	colon := strings.Index(line, ":")
	switch {
	case colon == 0:
		return parsedLine{}, fmt.Errorf("%w: empty argument name at line %d", ErrParse, lineNum)
	case colon < 0:
		return parsedLine{}, fmt.Errorf("%w: invalid argument name %q at line %d", ErrParse, line, lineNum)
	case colon == len(line)-1:
		return parsedLine{}, fmt.Errorf("%w: empty argument content at line %d", ErrParse, lineNum)
	}

	// Only the first colon is significant; the content may contain more.
	name := line[:colon]
	content := line[colon+1:]

	switch name {
	case UseOption, SaveAsOption:
		return parsedLine{kind: lineDiscard}, nil
	case FileTypeOption:
		return parsedLine{kind: lineFileType, content: content, fileType: filetype.Match(content)}, nil
	}

	for _, valid := range validNames {
		if name == valid {
			return parsedLine{kind: lineOption, name: name, content: content}, nil
		}
	}
	return parsedLine{}, fmt.Errorf("%w: invalid argument name %q at line %d", ErrParse, name, lineNum)
}

// parseSectionHeader handles lines opened by `[`: the cache name is the
// substring between the marker and a closing `]` at the very end.
func parseSectionHeader(lineNum int, line string) (parsedLine, error) {
	if !strings.HasSuffix(line, "]") || len(line) < 2 {
		return parsedLine{}, fmt.Errorf("%w: missing ] at line %d", ErrParse, lineNum)
	}
	name := line[1 : len(line)-1]
	if name == "" {
		return parsedLine{}, fmt.Errorf("%w: empty cache name at line %d", ErrParse, lineNum)
	}
	return parsedLine{kind: lineSection, name: name}, nil
}
