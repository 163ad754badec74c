// Package postproc prepares a linked executable for installation: copy it
// aside, optionally strip debug symbols, then move the result into place.
package postproc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/frida/v8-codegen/internal/msg"
	"github.com/frida/v8-codegen/internal/runner"
)

// Process copies the input executable to an intermediate file, runs the
// strip tool over it when requested, and renames it to outputPath. The
// intermediate file lives next to outputPath so the final rename stays
// within one filesystem. On any failure before the rename the intermediate
// file is removed; outputPath is never left partially written.
//
// stripTool is the strip command prefix; an empty list or an empty first
// token disables stripping regardless of stripRequested.
func Process(inputPath, outputPath string, stripRequested bool, stripTool []string) error {
	intermediate, err := copyToIntermediate(inputPath, outputPath)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			os.Remove(intermediate)
		}
	}()

	if stripRequested {
		if len(stripTool) > 0 && stripTool[0] != "" {
			argv := append(append([]string{}, stripTool...), intermediate)
			if err := runner.Run(argv); err != nil {
				return fmt.Errorf("strip failed: %w", err)
			}
		} else {
			msg.Warn("strip requested but no strip tool supplied, installing unstripped")
		}
	}

	if err := os.Rename(intermediate, outputPath); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	committed = true
	return nil
}

// copyToIntermediate writes the input's bytes to a fresh temporary file in
// the output's directory, preserving the input's file mode so the installed
// executable stays executable.
func copyToIntermediate(inputPath, outputPath string) (string, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), filepath.Base(outputPath)+".tmp*")
	if err != nil {
		return "", err
	}

	_, err = io.Copy(tmp, in)
	if err == nil {
		err = tmp.Chmod(stat.Mode().Perm())
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to copy %s: %w", inputPath, err)
	}

	return tmp.Name(), nil
}
