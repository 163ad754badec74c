// v8-codegen commit
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/alias"
)

var commitFlags aliasFlags

func doCommit(cmd *cobra.Command, args []string) {
	outputDir, subdirs, err := commitFlags.resolve()
	if errors.Is(err, errMissingOutputDir) {
		fatalUsage(cmd, "%v", err)
	} else if err != nil {
		fatal(err)
	}

	if err := alias.Process(outputDir, subdirs, alias.DefaultStrategy()); err != nil {
		fatal(err)
	}
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Alias already-generated files into the output root",
	Long: `Alias already-generated files into the output root. Same aliasing behavior
as the run subcommand, for build steps where generation already happened.`,
	Args: cobra.NoArgs,
	Run:  doCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
	commitFlags.register(commitCmd)
}
