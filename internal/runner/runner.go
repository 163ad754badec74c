// Package runner executes external tools (the code generator, the strip
// tool) and reports their exit status as a typed error so callers can
// propagate the child's own exit code to the build system.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/frida/v8-codegen/internal/msg"
)

var errEmptyCommand = errors.New("empty command")

// SubprocessError reports a child process that exited with a non-zero status.
type SubprocessError struct {
	Name     string
	ExitCode int
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
}

// Run executes argv as a child process, passing its output through indented
// on the parent's stdout/stderr, and blocks until it exits. A non-zero exit
// is returned as a *SubprocessError.
func Run(argv []string) error {
	if len(argv) == 0 {
		return errEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &msg.IndentWriter{Indent: "  ", W: os.Stdout}
	cmd.Stderr = &msg.IndentWriter{Indent: "  ", W: os.Stderr}
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &SubprocessError{Name: argv[0], ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return nil
}
