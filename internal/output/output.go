// Package output writes finished executables to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xyproto/teensy/internal/engine"
)

// ExecMode is the permission set of every written executable.
const ExecMode = 0o755

// WriteExecutable writes data verbatim to path and marks it executable for
// owner, group and others. The bytes go to a temporary file next to path
// that is renamed into place, so path is never left holding a partial file.
func WriteExecutable(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("no output path given")
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if engine.VerboseMode {
		fmt.Fprintf(os.Stderr, "Writing %d bytes to %s\n", len(data), path)
	}
	if err := writeAtomic(filepath.Clean(dir), base, path, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func tempName(dir, base string, attempt int) string {
	return filepath.Join(dir, fmt.Sprintf(".%s.%d.%d.tmp", base, os.Getpid(), attempt))
}
