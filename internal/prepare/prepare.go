// Package prepare creates the output directory layout ahead of a generator
// run and maintains the stamp file the build system uses for staleness
// tracking.
package prepare

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Dirs creates every declared subdirectory (and missing parents) under the
// output directory. Already-existing directories are fine.
func Dirs(outputDir string, subdirs []string) error {
	for _, sd := range subdirs {
		dir := filepath.Join(outputDir, sd)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// TouchStamp creates the stamp file if absent, or updates its modification
// time if it already exists.
func TouchStamp(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to touch stamp file: %w", err)
	}
	f.Close()

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("failed to touch stamp file: %w", err)
	}
	return nil
}
