package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/vk/filetemp/internal/cachefile"
	"github.com/vk/filetemp/internal/ctxlog"
)

const (
	cacheDirName  = ".filetemp"
	cacheFileName = "cache.txt"
)

// cachePath resolves the cache file location, creating its directory.
func (a *App) cachePath() (string, error) {
	dir := a.config.CacheDir
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, cacheDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache dir %q: %w", dir, err)
	}
	return filepath.Join(dir, cacheFileName), nil
}

// readCache loads the persisted collection when this invocation touches
// the cache at all. Loading happens for --save-as too, so the rewrite
// keeps every other saved bundle. When --use selects a bundle, its
// options merge into entries still unset; values from tokens win.
func (a *App) readCache(ctx context.Context) (cachefile.Collection, error) {
	useName, useSet := a.values.Get(cachefile.UseOption)
	_, saveSet := a.values.Get(cachefile.SaveAsOption)
	if !useSet && !saveSet {
		return nil, nil
	}

	path, err := a.cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !useSet {
			// Nothing saved yet; save-as starts a fresh collection.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open config cache file: %w", err)
	}

	coll, err := cachefile.Read(data, a.registry.Names(a.config.FileType))
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Cache file read.", "path", path, "bundles", len(coll))

	if !useSet {
		return coll, nil
	}

	bundle, ok := coll.Find(useName)
	if !ok {
		return nil, fmt.Errorf("used invalid cache name %q", useName)
	}
	if bundle.FileType != a.config.FileType {
		return nil, fmt.Errorf("cache %q was saved for file type %q", useName, bundle.FileType)
	}

	for _, pair := range bundle.Options {
		a.values.SetIfAbsent(pair.Name, pair.Content)
		a.registry.MarkSupplied(a.config.FileType, pair.Name)
	}
	return coll, nil
}

// saveCache persists the current option set under the --save-as name,
// replacing a bundle with that name or appending a new one, then
// rewrites the whole collection.
func (a *App) saveCache(ctx context.Context, coll cachefile.Collection) error {
	saveName, ok := a.values.Get(cachefile.SaveAsOption)
	if !ok {
		return nil
	}

	bundle := cachefile.Bundle{Name: saveName, FileType: a.config.FileType}
	for _, e := range a.registry.EntriesFor(a.config.FileType) {
		name := e.Option.Name
		if name == cachefile.UseOption || name == cachefile.SaveAsOption {
			// Cache-control options must never land inside a bundle.
			continue
		}
		if content, ok := a.values.Get(name); ok {
			bundle.Options = append(bundle.Options, cachefile.Pair{Name: name, Content: content})
		}
	}
	coll = coll.Upsert(bundle)

	path, err := a.cachePath()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open config cache file: %w", err)
	}
	if err := cachefile.Write(f, coll); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config cache file: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Cache file written.", "path", path, "bundles", len(coll))
	return nil
}
