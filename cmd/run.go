// v8-codegen run [generator command...]
package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/alias"
	"github.com/frida/v8-codegen/internal/msg"
	"github.com/frida/v8-codegen/internal/prepare"
	"github.com/frida/v8-codegen/internal/runner"
)

var runFlags aliasFlags

func doRun(cmd *cobra.Command, args []string) {
	outputDir, subdirs, err := runFlags.resolve()
	if errors.Is(err, errMissingOutputDir) {
		fatalUsage(cmd, "%v", err)
	} else if err != nil {
		fatal(err)
	}
	if len(args) == 0 {
		fatalUsage(cmd, "missing generator command")
	}

	if err := runGenerator(outputDir, subdirs, args); err != nil {
		fatal(err)
	}
}

// runGenerator creates the declared subdirectories, executes the generator,
// and on success aliases its output into the output root. A failing
// generator aborts the step before any aliasing happens.
func runGenerator(outputDir string, subdirs []alias.Subdir, argv []string) error {
	if err := prepare.Dirs(outputDir, subdirPaths(subdirs)); err != nil {
		return err
	}

	msg.Info("running %s", strings.Join(argv, " "))
	if err := runner.Run(argv); err != nil {
		return err
	}

	return alias.Process(outputDir, subdirs, alias.DefaultStrategy())
}

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run the code generator and alias its output",
	Long: `Run the code generator and alias its output. Creates the declared output
subdirectories, executes the trailing generator command, and on success
aliases the generated files into the output directory root. A failing
generator aborts the whole step; nothing is aliased.`,
	Args: cobra.ArbitraryArgs,
	Run:  doRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runFlags.register(runCmd)
	// the generator command keeps its own flags
	runCmd.Flags().SetInterspersed(false)
}
