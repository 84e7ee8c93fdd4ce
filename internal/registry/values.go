package registry

// FlagValue is the true-marker stored for flag options, which have no
// value token of their own.
const FlagValue = "true"

// Values maps option names to their matched string contents. Flag
// options store FlagValue. Once a name has a value it keeps it; later
// writers (cache merge, default fill) are no-ops.
type Values map[string]string

// SetIfAbsent records content for name unless a value already exists.
// It reports whether the value was stored.
func (v Values) SetIfAbsent(name, content string) bool {
	if _, ok := v[name]; ok {
		return false
	}
	v[name] = content
	return true
}

// Get returns the stored content for name.
func (v Values) Get(name string) (string, bool) {
	content, ok := v[name]
	return content, ok
}

// Flag reports whether name holds any value. Flag options are present
// exactly when they were supplied.
func (v Values) Flag(name string) bool {
	_, ok := v[name]
	return ok
}
