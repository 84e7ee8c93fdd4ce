package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/filetemp/internal/cachefile"
	"github.com/vk/filetemp/internal/ctxlog"
)

// outputMode captures what this invocation produces: nothing, a cache
// operation only, stdout content, a generated file, or both outputs.
type outputMode int

const (
	modeNone outputMode = iota
	modeConfigOnly
	modeShow
	modeFile
	modeShowAndFile
)

func (m outputMode) show() bool { return m == modeShow || m == modeShowAndFile }
func (m outputMode) file() bool { return m == modeFile || m == modeShowAndFile }

func (m outputMode) hasOutput() bool { return m.show() || m.file() }

// outputMode derives the mode from the matched options. --path and
// --show trump a bare cache operation; --use/--save-as alone still run
// the cache pipeline without producing output.
func (a *App) outputMode() outputMode {
	mode := modeNone
	if a.values.Flag(cachefile.UseOption) || a.values.Flag(cachefile.SaveAsOption) {
		mode = modeConfigOnly
	}
	if a.values.Flag(pathOption) {
		mode = modeFile
	}
	if a.values.Flag(showOption) {
		if mode == modeFile {
			mode = modeShowAndFile
		} else {
			mode = modeShow
		}
	}
	return mode
}

// Run executes the generation pipeline: merge cached options, enforce
// completeness, validate contents, render, emit, persist. Every error
// is terminal for the invocation; nothing is retried.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	mode := a.outputMode()
	if mode == modeNone {
		a.logger.Debug("No output or cache operation requested.")
		return nil
	}

	coll, err := a.readCache(ctx)
	if err != nil {
		return err
	}

	// Completeness only matters when a file will be generated; showing
	// a partial rendering is allowed, writing one is not.
	if mode.file() {
		if err := a.registry.AssertRequired(a.config.FileType, a.values); err != nil {
			return err
		}
	}

	if err := a.generator.Validate(a.values); err != nil {
		return err
	}

	var content string
	if mode.hasOutput() {
		if content, err = a.generator.Render(a.values); err != nil {
			return err
		}
	}

	if mode.show() {
		fmt.Fprint(a.outW, content)
	}

	if dir, ok := a.values.Get(pathOption); ok {
		target := filepath.Join(dir, a.generator.OutputName())
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", target, err)
		}
		a.logger.Debug("Generated file written.", "path", target)

		if a.values.Flag(genExampleOption) {
			if err := a.generator.WriteExample(a.values, dir); err != nil {
				return err
			}
			a.logger.Debug("Example scaffold written.", "dir", dir)
		}
	}

	return a.saveCache(ctx, coll)
}
