// Package cachefile reads and writes the persisted option cache: a
// line-oriented text file of named sections, each holding a file type
// and the option contents saved under that name.
//
// The format is deliberately flat. Section headers are `[name]` lines,
// options are `name:content` lines (only the first colon is
// significant), sections end at a blank line or end of input, and no
// escaping mechanism exists. A single malformed line aborts the whole
// read, since one corrupt section makes every boundary after it
// ambiguous.
package cachefile
