// Package alias gives generated source files stable, predictable names in
// the top level of the output directory, so a build graph can reference them
// without knowing the generator's directory layout.
package alias

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mode selects how a subdirectory's files are named in the output root.
type Mode string

const (
	// ModeFlatten joins all path segments with underscores,
	// e.g. sub/dir/foo.c -> sub_dir_foo.c.
	ModeFlatten Mode = "flatten"
	// ModeLink keeps only the base name, e.g. sub/dir/foo.c -> foo.c.
	ModeLink Mode = "link"
)

// Subdir declares one output subdirectory whose generated files should be
// aliased. Path is relative to the output directory.
type Subdir struct {
	Path string
	Mode Mode
}

// ErrAliasCollision reports two different generated files mapping to the
// same alias name within a single run.
var ErrAliasCollision = errors.New("alias collision")

// Extensions the generator is known to emit. Only direct children of each
// declared subdirectory are considered.
var sourceGlobs = []string{
	"*.c",
	"*.cc",
	"*.cpp",
	"*.h",
	"*.inc",
}

// Process scans each declared subdirectory for generated files and creates
// an alias for every match in the output directory root using the given
// strategy.
func Process(outputDir string, subdirs []Subdir, strategy Strategy) error {
	fsys := os.DirFS(outputDir)
	sources := make(map[string]string) // alias name -> relative source path

	for _, sd := range subdirs {
		base := filepath.ToSlash(sd.Path)
		for _, glob := range sourceGlobs {
			matches, err := doublestar.Glob(fsys, path.Join(base, glob), doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("while globbing %s: %w", sd.Path, err)
			}
			for _, relTarget := range matches {
				name := aliasName(relTarget, sd.Mode)
				if prev, ok := sources[name]; ok {
					if prev == relTarget {
						continue // same subdir declared twice
					}
					return fmt.Errorf("%w: %s and %s both map to %s", ErrAliasCollision, prev, relTarget, name)
				}
				sources[name] = relTarget

				if err := strategy.Alias(outputDir, name, relTarget); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func aliasName(relTarget string, mode Mode) string {
	if mode == ModeFlatten {
		return strings.ReplaceAll(relTarget, "/", "_")
	}
	return path.Base(relTarget)
}
