// Package registry holds the option definitions an invocation may use
// and tracks, per definition, whether a value for it has been supplied.
//
// Definitions live in two partitions: one per file type and one global
// partition that applies regardless of file type. Lookups always visit
// the file-type partition before the global one; that ordering is the
// precedence order everywhere definitions are consulted.
package registry
