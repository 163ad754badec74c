package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frida/v8-codegen/internal/alias"
	"github.com/frida/v8-codegen/internal/manifest"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codegen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadAndResolve(t *testing.T) {
	path := writeManifest(t, `
output-directory = "gen"

[[subdir]]
path = "torque-generated"
mode = "flatten"

[[subdir]]
path = "inspector"
mode = "link"
`)

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.OutputDirectory != "gen" {
		t.Fatalf("output-directory = %q", m.OutputDirectory)
	}

	subdirs, err := m.ResolveSubdirs(manifest.Env{OS: "linux", Arch: "arm64"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []alias.Subdir{
		{Path: "torque-generated", Mode: alias.ModeFlatten},
		{Path: "inspector", Mode: alias.ModeLink},
	}
	if len(subdirs) != len(want) {
		t.Fatalf("got %d subdirs, want %d", len(subdirs), len(want))
	}
	for i := range want {
		if subdirs[i] != want[i] {
			t.Fatalf("subdir %d = %+v, want %+v", i, subdirs[i], want[i])
		}
	}
}

func TestWhenConditionFiltersSubdirs(t *testing.T) {
	path := writeManifest(t, `
output-directory = "gen"

[[subdir]]
path = "everywhere"
mode = "link"

[[subdir]]
path = "linux-only"
mode = "link"
when = 'os == "linux"'

[[subdir]]
path = "windows-only"
mode = "flatten"
when = 'os == "windows"'
`)

	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	subdirs, err := m.ResolveSubdirs(manifest.Env{OS: "linux", Arch: "amd64"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(subdirs) != 2 {
		t.Fatalf("got %d subdirs, want 2: %+v", len(subdirs), subdirs)
	}
	if subdirs[0].Path != "everywhere" || subdirs[1].Path != "linux-only" {
		t.Fatalf("unexpected subdirs: %+v", subdirs)
	}
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	path := writeManifest(t, `
output-directory = "gen"

[[subdir]]
path = "x"
mode = "shred"
`)
	if _, err := manifest.Load(path); err == nil {
		t.Fatal("invalid mode must fail")
	}
}

func TestLoadRequiresOutputDirectory(t *testing.T) {
	path := writeManifest(t, `
[[subdir]]
path = "x"
mode = "link"
`)
	if _, err := manifest.Load(path); err == nil {
		t.Fatal("missing output-directory must fail")
	}
}

func TestResolveRejectsBadExpression(t *testing.T) {
	path := writeManifest(t, `
output-directory = "gen"

[[subdir]]
path = "x"
mode = "link"
when = 'os =='
`)
	m, err := manifest.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := m.ResolveSubdirs(manifest.Env{OS: "linux", Arch: "amd64"}); err == nil {
		t.Fatal("bad when expression must fail")
	}
}
