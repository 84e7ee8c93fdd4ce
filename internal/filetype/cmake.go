package filetype

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/filetemp/internal/schema"
)

// Option names understood by the CMake generator.
const (
	cmakeVersionOption    = "version"
	cmakeProjectOption    = "proj"
	cmakeMainLangOption   = "main-lang"
	cmakeCStdOption       = "cstd"
	cmakeCxxStdOption     = "cxxstd"
	cmakeTargetTypeOption = "target-type"
	cmakeTargetNameOption = "target-name"
)

// cmakeGenerator produces a CMakeLists.txt from the matched options.
type cmakeGenerator struct{}

func (cmakeGenerator) Options() []schema.Option {
	return []schema.Option{
		schema.New(cmakeVersionOption).Require(),
		schema.New(cmakeProjectOption).Require(),
		schema.New(cmakeMainLangOption).WithDefault("cxx"),
		schema.New(cmakeCStdOption),
		schema.New(cmakeCxxStdOption),
		schema.New(cmakeTargetTypeOption),
		schema.New(cmakeTargetNameOption),
	}
}

func (cmakeGenerator) OutputName() string {
	return "CMakeLists.txt"
}

// Validate checks option contents the matcher accepted verbatim:
// enumerated values and numeric standards.
func (cmakeGenerator) Validate(vals Values) error {
	if lang, ok := vals.Get(cmakeMainLangOption); ok {
		if !strings.EqualFold(lang, "c") && !strings.EqualFold(lang, "cxx") {
			return fmt.Errorf("invalid value %q for --%s, expected \"c\" or \"cxx\"", lang, cmakeMainLangOption)
		}
	}
	if tt, ok := vals.Get(cmakeTargetTypeOption); ok {
		switch {
		case strings.EqualFold(tt, "executable"),
			strings.EqualFold(tt, "staticlib"),
			strings.EqualFold(tt, "sharedlib"):
		default:
			return fmt.Errorf("invalid value %q for --%s, expected \"executable\", \"staticlib\" or \"sharedlib\"", tt, cmakeTargetTypeOption)
		}
	}
	for _, name := range []string{cmakeCStdOption, cmakeCxxStdOption} {
		if std, ok := vals.Get(name); ok {
			if _, err := strconv.Atoi(std); err != nil {
				return fmt.Errorf("invalid value %q for --%s, expected a number", std, name)
			}
		}
	}
	return nil
}

// Render produces the CMakeLists.txt content. It assumes Validate has
// already accepted the option contents.
func (cmakeGenerator) Render(vals Values) (string, error) {
	version, _ := vals.Get(cmakeVersionOption)
	project, _ := vals.Get(cmakeProjectOption)

	targetName := project
	if name, ok := vals.Get(cmakeTargetNameOption); ok {
		targetName = name
	}
	if targetName == "" {
		targetName = "foo"
	}

	var out strings.Builder
	fmt.Fprintf(&out, "cmake_minimum_required(VERSION %s)\n\n", version)
	if project != "" {
		fmt.Fprintf(&out, "project(%s)\n\n", project)
	}

	if std, ok := vals.Get(cmakeCStdOption); ok {
		fmt.Fprintf(&out, "set(CMAKE_C_STANDARD %s)\nset(CMAKE_C_STANDARD_REQUIRED ON)\n\n", std)
	}
	if std, ok := vals.Get(cmakeCxxStdOption); ok {
		fmt.Fprintf(&out, "set(CMAKE_CXX_STANDARD %s)\nset(CMAKE_CXX_STANDARD_REQUIRED ON)\n\n", std)
	}

	targetType, _ := vals.Get(cmakeTargetTypeOption)
	switch {
	case strings.EqualFold(targetType, "staticlib"):
		fmt.Fprintf(&out, "add_library(%s STATIC)\n\n", targetName)
	case strings.EqualFold(targetType, "sharedlib"):
		fmt.Fprintf(&out, "add_library(%s SHARED)\n\n", targetName)
	default:
		fmt.Fprintf(&out, "add_executable(%s)\n\n", targetName)
	}

	fmt.Fprintf(&out, "target_include_directories(%s PRIVATE src)\ntarget_sources(%s PRIVATE src/main.%s)",
		targetName, targetName, cmakeMainExtension(vals))

	return out.String(), nil
}

// WriteExample writes a minimal main source file under <dir>/src so the
// generated build script compiles out of the box.
func (cmakeGenerator) WriteExample(vals Values, dir string) error {
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create example source dir: %w", err)
	}

	var name, content string
	if cmakeMainExtension(vals) == "c" {
		name = "main.c"
		content = "#include <stdio.h>\n\nint main(void)\n{\n    printf(\"Hello, world!\\n\");\n    return 0;\n}\n"
	} else {
		name = "main.cpp"
		content = "#include <iostream>\n\nint main()\n{\n    std::cout << \"Hello, world!\" << std::endl;\n    return 0;\n}\n"
	}

	if err := os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write example source: %w", err)
	}
	return nil
}

// cmakeMainExtension picks the main source extension from main-lang.
// The language defaults to C++ when the option is absent, matching the
// option's declared default.
func cmakeMainExtension(vals Values) string {
	if lang, ok := vals.Get(cmakeMainLangOption); ok && strings.EqualFold(lang, "c") {
		return "c"
	}
	return "cpp"
}
