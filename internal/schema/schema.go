// Package schema defines the static descriptions of the command-line
// options a file type accepts. An Option carries no runtime state; the
// registry tracks per-invocation state separately.
package schema

// Option describes one recognized option: its name, whether it is a
// bare flag, whether it must be supplied, and an optional default used
// when it is absent. Options are treated as immutable once defined.
type Option struct {
	// Name is the stable identifier matched against `--<name>` tokens
	// and against option lines in the cache file.
	Name string

	// Flag marks an option whose presence alone is significant. Flag
	// options never consume a value token.
	Flag bool

	// Required marks an option that must be supplied before output can
	// be generated.
	Required bool

	// Default is the value filled in when the option was not supplied.
	// Only meaningful when HasDefault is set.
	Default string

	// HasDefault distinguishes an empty-string default from no default.
	HasDefault bool
}

// New returns an optional, non-flag option with the given name.
func New(name string) Option {
	return Option{Name: name}
}

// AsFlag returns a copy of the option marked as a flag.
func (o Option) AsFlag() Option {
	o.Flag = true
	return o
}

// Require returns a copy of the option marked as required.
func (o Option) Require() Option {
	o.Required = true
	return o
}

// WithDefault returns a copy of the option carrying a default value.
func (o Option) WithDefault(value string) Option {
	o.Default = value
	o.HasDefault = true
	return o
}
