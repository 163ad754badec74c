package alias

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Strategy creates one alias entry in the output root. relTarget is the
// aliased file's path relative to the output root, slash-separated.
type Strategy interface {
	Alias(outputDir, name, relTarget string) error
}

// DefaultStrategy probes platform symlink support once at startup. Symlinks
// are assumed unavailable on Windows and available everywhere else.
func DefaultStrategy() Strategy {
	if runtime.GOOS == "windows" {
		return CopyOnChangeStrategy{}
	}
	return SymlinkStrategy{}
}

// SymlinkStrategy aliases by creating a relative symbolic link. An existing
// entry at the alias path is left untouched, whatever it points at.
type SymlinkStrategy struct{}

func (SymlinkStrategy) Alias(outputDir, name, relTarget string) error {
	aliasPath := filepath.Join(outputDir, name)
	if _, err := os.Lstat(aliasPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.Symlink(filepath.FromSlash(relTarget), aliasPath); err != nil {
		return fmt.Errorf("failed to symlink %s: %w", name, err)
	}
	return nil
}

// CopyOnChangeStrategy aliases by copying file content, rewriting the alias
// only when its bytes differ from the target's. Skipping the write when
// nothing changed keeps downstream build timestamps stable.
type CopyOnChangeStrategy struct{}

func (CopyOnChangeStrategy) Alias(outputDir, name, relTarget string) error {
	targetPath := filepath.Join(outputDir, filepath.FromSlash(relTarget))
	aliasPath := filepath.Join(outputDir, name)

	contents, err := os.ReadFile(targetPath)
	if err != nil {
		return err
	}
	old, err := os.ReadFile(aliasPath)
	if err == nil && bytes.Equal(old, contents) {
		return nil
	} else if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := os.WriteFile(aliasPath, contents, 0o644); err != nil {
		return fmt.Errorf("failed to copy alias %s: %w", name, err)
	}
	return nil
}
