// v8-codegen <command>
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/msg"
	"github.com/frida/v8-codegen/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "v8-codegen",
	Short: "Build-time glue around the code generator",
	Long: `Build-time glue around the code generator: prepare output directories,
wrap generator invocations, alias generated sources under stable names, and
post-process linked executables before installation.`,
}

// fatal reports err and exits. A child process's own exit status is passed
// through to the build system; everything else exits 1.
func fatal(err error) {
	var procErr *runner.SubprocessError
	if errors.As(err, &procErr) {
		msg.Error("%v", err)
		os.Exit(procErr.ExitCode)
	}
	msg.Fatal("%v", err)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
