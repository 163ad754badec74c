package runner_test

import (
	"errors"
	"testing"

	"github.com/frida/v8-codegen/internal/runner"
)

func TestRunSucceedsOnZeroExit(t *testing.T) {
	if err := runner.Run([]string{"true"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunReportsChildExitCode(t *testing.T) {
	err := runner.Run([]string{"sh", "-c", "exit 3"})
	var procErr *runner.SubprocessError
	if !errors.As(err, &procErr) {
		t.Fatalf("err = %v, want *SubprocessError", err)
	}
	if procErr.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", procErr.ExitCode)
	}
}

func TestRunRejectsEmptyCommand(t *testing.T) {
	if err := runner.Run(nil); err == nil {
		t.Fatal("empty command must fail")
	}
}

func TestRunReportsMissingProgram(t *testing.T) {
	err := runner.Run([]string{"definitely-not-a-real-program-1234"})
	if err == nil {
		t.Fatal("missing program must fail")
	}
	var procErr *runner.SubprocessError
	if errors.As(err, &procErr) {
		t.Fatalf("missing program must not look like a child exit: %v", err)
	}
}
