package registry

import (
	"fmt"

	"github.com/vk/filetemp/internal/filetype"
	"github.com/vk/filetemp/internal/schema"
)

// SupplyState tracks how an entry received its value, if at all. An
// entry moves Unset -> Supplied (token or cache merge) and may move
// Unset -> Defaulted during the required-options pass. Supplied never
// regresses; first writer wins.
type SupplyState int

const (
	// SupplyNone means no value has been recorded for the entry.
	SupplyNone SupplyState = iota

	// SupplySupplied means a token or a cache merge provided a value.
	SupplySupplied

	// SupplyDefaulted means the entry's default filled the gap.
	SupplyDefaulted
)

// Entry pairs an option definition with its per-invocation state.
// Entries are owned exclusively by the Registry.
type Entry struct {
	Option schema.Option
	State  SupplyState
}

// Registry is the full set of option definitions for an application
// instance, partitioned per file type plus a global partition.
type Registry struct {
	typed  map[filetype.FileType][]*Entry
	global []*Entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{typed: make(map[filetype.FileType][]*Entry)}
}

// Define registers an option definition in the partition for ft, or in
// the global partition when ft is filetype.Unknown. A name already
// visible in that scope (same partition, or the type/global overlap) is
// rejected so precedence can never silently decide between duplicates.
func (r *Registry) Define(ft filetype.FileType, opt schema.Option) error {
	if r.visible(ft, opt.Name) {
		if ft == filetype.Unknown {
			return fmt.Errorf("option %q is already defined", opt.Name)
		}
		return fmt.Errorf("option %q is already defined for file type %q", opt.Name, ft)
	}
	entry := &Entry{Option: opt}
	if ft == filetype.Unknown {
		// A new global name must not collide with any typed partition.
		for scope := range r.typed {
			if r.lookupTyped(scope, opt.Name) != nil {
				return fmt.Errorf("option %q is already defined for file type %q", opt.Name, scope)
			}
		}
		r.global = append(r.global, entry)
		return nil
	}
	r.typed[ft] = append(r.typed[ft], entry)
	return nil
}

// DefineGlobal registers a file-type-agnostic option definition.
func (r *Registry) DefineGlobal(opt schema.Option) error {
	return r.Define(filetype.Unknown, opt)
}

// EntriesFor returns the entries applicable to ft in precedence order:
// the file-type partition first, then the global partition.
func (r *Registry) EntriesFor(ft filetype.FileType) []*Entry {
	entries := make([]*Entry, 0, len(r.typed[ft])+len(r.global))
	entries = append(entries, r.typed[ft]...)
	entries = append(entries, r.global...)
	return entries
}

// Names returns the option names applicable to ft in precedence order.
// This is the valid-name set handed to the cache reader.
func (r *Registry) Names(ft filetype.FileType) []string {
	entries := r.EntriesFor(ft)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Option.Name)
	}
	return names
}

// Lookup returns the first entry for name in precedence order, or nil.
func (r *Registry) Lookup(ft filetype.FileType, name string) *Entry {
	for _, e := range r.EntriesFor(ft) {
		if e.Option.Name == name {
			return e
		}
	}
	return nil
}

// MarkSupplied records that a value for name arrived from a token or a
// cache merge. It reports whether a matching entry exists. An entry
// already supplied or defaulted keeps its state.
func (r *Registry) MarkSupplied(ft filetype.FileType, name string) bool {
	e := r.Lookup(ft, name)
	if e == nil {
		return false
	}
	if e.State == SupplyNone {
		e.State = SupplySupplied
	}
	return true
}

func (r *Registry) visible(ft filetype.FileType, name string) bool {
	if r.lookupTyped(ft, name) != nil {
		return true
	}
	for _, e := range r.global {
		if e.Option.Name == name {
			return true
		}
	}
	return false
}

func (r *Registry) lookupTyped(ft filetype.FileType, name string) *Entry {
	for _, e := range r.typed[ft] {
		if e.Option.Name == name {
			return e
		}
	}
	return nil
}
