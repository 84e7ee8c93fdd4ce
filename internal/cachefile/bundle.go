package cachefile

import "github.com/vk/filetemp/internal/filetype"

// Pair is one saved option: its name and its verbatim content.
type Pair struct {
	Name    string
	Content string
}

// Bundle is a named snapshot of options for one file type, persisted as
// one cache-file section. Bundles own their strings; nothing references
// the buffer they were parsed from.
type Bundle struct {
	Name     string
	FileType filetype.FileType
	Options  []Pair
}

// Collection is the ordered sequence of every bundle in one cache file.
type Collection []Bundle

// Find returns the bundle saved under name.
func (c Collection) Find(name string) (Bundle, bool) {
	for _, b := range c {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}

// Upsert replaces the bundle with the same cache name in place, or
// appends when none exists, and returns the updated collection.
func (c Collection) Upsert(bundle Bundle) Collection {
	for i, b := range c {
		if b.Name == bundle.Name {
			c[i] = bundle
			return c
		}
	}
	return append(c, bundle)
}
