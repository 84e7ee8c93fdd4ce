package filetype

import (
	"fmt"
	"strings"

	"github.com/vk/filetemp/internal/schema"
)

// FileType identifies which generation logic and which option set apply
// to an invocation. The set of types is closed; adding a type means
// adding a constant here and a case to Generator.
type FileType int

const (
	// Unknown is the zero value. It doubles as the scope key for
	// options that apply regardless of file type.
	Unknown FileType = iota

	// CMake generates a CMakeLists.txt build script.
	CMake
)

// All returns every known file type, in declaration order.
func All() []FileType {
	return []FileType{CMake}
}

// Match resolves a user-supplied name to a file type. Matching is
// case-insensitive; unrecognized names resolve to Unknown.
func Match(name string) FileType {
	for _, ft := range All() {
		if strings.EqualFold(name, ft.String()) {
			return ft
		}
	}
	return Unknown
}

// String returns the canonical lower-case name of the file type. This
// is the token persisted on file_type lines in the cache file.
func (ft FileType) String() string {
	switch ft {
	case CMake:
		return "cmake"
	default:
		return "unknown"
	}
}

// Values is the read view of matched options a generator consumes.
// Flag options store a true-marker value, so presence implies set.
type Values interface {
	Get(name string) (string, bool)
	Flag(name string) bool
}

// Generator is the capability set every file type implements: its
// option definitions, the name of the file it produces, validation of
// option contents, rendering, and an example source scaffold.
type Generator interface {
	Options() []schema.Option
	OutputName() string
	Validate(vals Values) error
	Render(vals Values) (string, error)
	WriteExample(vals Values, dir string) error
}

// Generator returns the generator for the file type. Unknown has no
// generator.
func (ft FileType) Generator() (Generator, error) {
	switch ft {
	case CMake:
		return cmakeGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown file type")
	}
}
