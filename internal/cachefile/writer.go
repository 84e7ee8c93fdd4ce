package cachefile

import (
	"bufio"
	"fmt"
	"io"
)

// Write serializes the collection in order: for each bundle a `[name]`
// header, its file_type line, one line per option pair in stored order,
// then a blank separator line. The output round-trips through Read with
// the same valid-name set. Write failures are surfaced, not retried.
func Write(w io.Writer, coll Collection) error {
	bw := bufio.NewWriter(w)
	for _, bundle := range coll {
		fmt.Fprintf(bw, "[%s]%s", bundle.Name, lineEnding)
		fmt.Fprintf(bw, "%s:%s%s", FileTypeOption, bundle.FileType, lineEnding)
		for _, pair := range bundle.Options {
			fmt.Fprintf(bw, "%s:%s%s", pair.Name, pair.Content, lineEnding)
		}
		bw.WriteString(lineEnding)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write cache content: %w", err)
	}
	return nil
}
