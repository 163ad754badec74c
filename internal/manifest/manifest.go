// Package manifest parses the optional TOML file a build graph can use to
// declare the output directory and subdirectory set once, instead of
// repeating --flatten-subdir/--link-subdir flags in every invocation.
package manifest

import (
	"fmt"
	"os"
	"runtime"

	"github.com/expr-lang/expr"
	"github.com/pelletier/go-toml/v2"

	"github.com/frida/v8-codegen/internal/alias"
)

// Env is what `when` expressions are evaluated against.
type Env struct {
	OS   string `expr:"os"`
	Arch string `expr:"arch"`
}

func HostEnv() Env {
	return Env{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

type Manifest struct {
	OutputDirectory string   `toml:"output-directory"`
	Subdirs         []Subdir `toml:"subdir"`
}

type Subdir struct {
	Path string `toml:"path"`
	Mode string `toml:"mode"`
	When string `toml:"when"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.OutputDirectory == "" {
		return nil, fmt.Errorf("manifest %s: output-directory is required", path)
	}
	for i, sd := range m.Subdirs {
		if sd.Path == "" {
			return nil, fmt.Errorf("manifest %s: subdir %d has no path", path, i)
		}
		switch alias.Mode(sd.Mode) {
		case alias.ModeFlatten, alias.ModeLink:
		default:
			return nil, fmt.Errorf("manifest %s: subdir %q has invalid mode %q", path, sd.Path, sd.Mode)
		}
	}

	return &m, nil
}

// ResolveSubdirs evaluates each subdir's `when` expression against env and
// returns the declarations that apply. An entry without a `when` always
// applies.
func (m *Manifest) ResolveSubdirs(env Env) ([]alias.Subdir, error) {
	var subdirs []alias.Subdir
	for _, sd := range m.Subdirs {
		if sd.When != "" {
			program, err := expr.Compile(sd.When, expr.Env(env), expr.AsBool())
			if err != nil {
				return nil, fmt.Errorf("failed to compile condition for subdir %q: %w", sd.Path, err)
			}
			result, err := expr.Run(program, env)
			if err != nil {
				return nil, fmt.Errorf("failed to run condition for subdir %q: %w", sd.Path, err)
			}
			if !result.(bool) {
				continue
			}
		}
		subdirs = append(subdirs, alias.Subdir{Path: sd.Path, Mode: alias.Mode(sd.Mode)})
	}
	return subdirs, nil
}
