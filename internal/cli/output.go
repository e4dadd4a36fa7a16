package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// writeOutput writes what fn produces to path, "-" stands for w.
func writeOutput(w io.Writer, path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(w)
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
