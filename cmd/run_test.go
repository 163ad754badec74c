package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frida/v8-codegen/internal/alias"
	"github.com/frida/v8-codegen/internal/runner"
)

func TestFailingGeneratorFailsWithoutAliasing(t *testing.T) {
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(out, "gen"), 0o755); err != nil {
		t.Fatal(err)
	}
	// leftovers from an earlier generation; a failed run must not alias them
	if err := os.WriteFile(filepath.Join(out, "gen", "a.c"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	subdirs := []alias.Subdir{{Path: "gen", Mode: alias.ModeLink}}
	err := runGenerator(out, subdirs, []string{"sh", "-c", "exit 5"})

	var procErr *runner.SubprocessError
	if !errors.As(err, &procErr) {
		t.Fatalf("err = %v, want *SubprocessError", err)
	}
	if procErr.ExitCode != 5 {
		t.Fatalf("exit code = %d, want 5", procErr.ExitCode)
	}
	if _, err := os.Stat(filepath.Join(out, "a.c")); !os.IsNotExist(err) {
		t.Fatalf("alias created although the generator failed")
	}
}

func TestSuccessfulGeneratorOutputIsAliased(t *testing.T) {
	out := t.TempDir()

	// generator stand-in: writes one source file into its output subdir
	subdirs := []alias.Subdir{{Path: "gen", Mode: alias.ModeLink}}
	argv := []string{"sh", "-c", `printf generated > "$0/gen/a.c"`, out}
	if err := runGenerator(out, subdirs, argv); err != nil {
		t.Fatalf("run: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(out, "a.c"))
	if err != nil {
		t.Fatalf("read alias: %v", err)
	}
	if string(got) != "generated" {
		t.Fatalf("alias content = %q, want %q", got, "generated")
	}
}
