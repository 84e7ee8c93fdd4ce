//go:build windows

package cachefile

// lineEnding is the host platform's native line terminator.
const lineEnding = "\r\n"
