// Package cli owns the raw command-line surface: usage text, the
// file-type selector token, and the translation of surface errors into
// exit codes.
package cli

import (
	"fmt"
	"io"

	"github.com/vk/filetemp/internal/app"
	"github.com/vk/filetemp/internal/filetype"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `filetemp - generates project scaffolding files

Usage:
  filetemp <FILE_TYPE> [OPTIONS]

File types:
  cmake                    Generates CMakeLists.txt

CMake options:
  --version <VER>          Used in "cmake_minimum_required" [required]
  --proj <NAME>            Project name [required]
  --main-lang <LANG>       Main language of the project; decides whether
                           main.c or main.cpp is scaffolded.
                           [possible values: c, cxx] [default: cxx]
  --cstd <STD>             C standard
  --cxxstd <STD>           C++ standard
  --target-type <TYPE>     Target type
                           [possible values: executable, staticlib, sharedlib]
                           [default: executable]
  --target-name <NAME>     Target name; uses the project name if not specified.

General options:
  --show                   Print the generated content to stdout
  --path <PATH>            Directory the file is generated into
  --gen-example            Also scaffold src/main.c or src/main.cpp
  --save-as <NAME>         Save this option set under NAME for reuse
  --use <NAME>             Fill unset options from the set saved as NAME
  --log-level <LEVEL>      debug, info, warn or error [default: error]
  --log-format <FORMAT>    text or json [default: text]
`

// Parse processes the raw arguments. It returns a populated app.Config,
// a boolean indicating the program should exit cleanly (help was
// printed), or an error.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if len(args) == 0 {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	selector := args[0]
	if selector == "--help" || selector == "-h" {
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	ft := filetype.Match(selector)
	if ft == filetype.Unknown {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid file type %q", selector)}
	}

	config, err := app.NewConfig(app.Config{
		FileType: ft,
		Args:     args[1:],
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
