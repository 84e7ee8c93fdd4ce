package app

import (
	"io"
	"log/slog"

	"github.com/vk/filetemp/internal/filetype"
	"github.com/vk/filetemp/internal/matcher"
	"github.com/vk/filetemp/internal/registry"
)

// App encapsulates one invocation: the populated registry, the matched
// option values, the selected generator, and an isolated logger.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *registry.Registry
	values    registry.Values
	generator filetype.Generator
	config    *Config
}

// NewApp builds the option registry, matches the raw tokens against it,
// and configures the instance logger from the matched logging options.
// Generated content goes to outW; log records go to logW so stdout
// stays clean for --show.
func NewApp(outW, logW io.Writer, config *Config) (*App, error) {
	reg := registry.New()
	defineOptions(reg)

	values := make(registry.Values)
	if err := matcher.Match(reg, config.FileType, config.Args, values); err != nil {
		return nil, err
	}

	gen, err := config.FileType.Generator()
	if err != nil {
		return nil, err
	}

	logger := newLogger(
		valueOrDefault(reg, config.FileType, values, logLevelOption),
		valueOrDefault(reg, config.FileType, values, logFormatOption),
		logW,
	)
	logger.Debug("Arguments matched.", "file_type", config.FileType, "options", len(values))

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		values:    values,
		generator: gen,
		config:    config,
	}, nil
}

// valueOrDefault reads a matched value, falling back to the option's
// declared default. Needed before the required-options pass has filled
// defaults in, e.g. for logger construction.
func valueOrDefault(reg *registry.Registry, ft filetype.FileType, values registry.Values, name string) string {
	if v, ok := values.Get(name); ok {
		return v
	}
	if e := reg.Lookup(ft, name); e != nil && e.Option.HasDefault {
		return e.Option.Default
	}
	return ""
}
