package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/alias"
	"github.com/frida/v8-codegen/internal/manifest"
	"github.com/frida/v8-codegen/internal/msg"
)

type EnumValue struct {
	value      string
	allowed    map[string]string // value -> help text
	defaultVal string
}

func NewEnumValue(defaultVal string, allowed map[string]string) EnumValue {
	if _, ok := allowed[defaultVal]; !ok {
		panic(fmt.Sprintf("default value %q not in allowed set", defaultVal))
	}
	return EnumValue{
		value:      defaultVal,
		allowed:    allowed,
		defaultVal: defaultVal,
	}
}

func (e *EnumValue) String() string     { return e.value }
func (e *EnumValue) HelpString() string { return "{" + strings.Join(e.AllowedKeys(), ", ") + "}" }
func (e *EnumValue) Type() string       { return "enum" }
func (e *EnumValue) Value() string      { return e.value }

func (e *EnumValue) Set(v string) error {
	if _, ok := e.allowed[v]; ok {
		e.value = v
		return nil
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.AllowedKeys(), ", "))
}

func (e *EnumValue) AllowedKeys() []string {
	keys := make([]string, 0, len(e.allowed))
	for k := range e.allowed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *EnumValue) CompletionFunc() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		items := make([]string, 0, len(e.allowed))
		for _, k := range e.AllowedKeys() {
			if help := e.allowed[k]; help != "" {
				items = append(items, fmt.Sprintf("%s\t%s", k, help))
			} else {
				items = append(items, k)
			}
		}
		return items, cobra.ShellCompDirectiveDefault
	}
}

// aliasFlags is the flag set shared by the run and commit subcommands: the
// output root plus the declared flatten/link subdirectories, spelled out as
// repeatable flags or read from a manifest file.
type aliasFlags struct {
	outputDir    string
	flattenDirs  []string
	linkDirs     []string
	manifestPath string
}

func (f *aliasFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.outputDir, "output-directory", "", "directory where output will be written")
	cmd.Flags().StringArrayVar(&f.flattenDirs, "flatten-subdir", nil, "declare a single output directory to be flattened")
	cmd.Flags().StringArrayVar(&f.linkDirs, "link-subdir", nil, "declare a single output directory to be linked/copied")
	cmd.Flags().StringVar(&f.manifestPath, "manifest", "", "read output directory and subdirs from a TOML manifest")
}

// resolve merges the manifest (if any) with the repeatable flags. Flags add
// to, and --output-directory overrides, what the manifest declares.
func (f *aliasFlags) resolve() (string, []alias.Subdir, error) {
	outputDir := f.outputDir
	var subdirs []alias.Subdir

	if f.manifestPath != "" {
		m, err := manifest.Load(f.manifestPath)
		if err != nil {
			return "", nil, err
		}
		subdirs, err = m.ResolveSubdirs(manifest.HostEnv())
		if err != nil {
			return "", nil, err
		}
		if outputDir == "" {
			outputDir = m.OutputDirectory
		}
	}

	for _, d := range f.flattenDirs {
		subdirs = append(subdirs, alias.Subdir{Path: d, Mode: alias.ModeFlatten})
	}
	for _, d := range f.linkDirs {
		subdirs = append(subdirs, alias.Subdir{Path: d, Mode: alias.ModeLink})
	}

	if outputDir == "" {
		return "", nil, errMissingOutputDir
	}
	return outputDir, subdirs, nil
}

var errMissingOutputDir = errors.New("--output-directory is required (or declare it in a manifest)")

func subdirPaths(subdirs []alias.Subdir) []string {
	paths := make([]string, len(subdirs))
	for i, sd := range subdirs {
		paths[i] = sd.Path
	}
	return paths
}

// fatalUsage reports a usage error before any side effect has happened.
func fatalUsage(cmd *cobra.Command, format string, a ...any) {
	msg.Error(format, a...)
	cmd.Usage()
	os.Exit(2)
}
