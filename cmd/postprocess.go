// v8-codegen postprocess [strip tool...]
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/postproc"
)

var (
	postprocessInputFile  string
	postprocessOutputFile string
	flagStripOption       EnumValue = NewEnumValue("false", map[string]string{
		"true":  "Strip the executable before installation",
		"false": "Install the executable as-is",
	})
)

func doPostprocess(cmd *cobra.Command, args []string) {
	stripRequested := flagStripOption.Value() == "true"
	if err := postproc.Process(postprocessInputFile, postprocessOutputFile, stripRequested, args); err != nil {
		fatal(err)
	}
}

var postprocessCmd = &cobra.Command{
	Use:   "postprocess [flags] -- strip-tool [args...]",
	Short: "Post-process an executable to prepare it for installation",
	Long: `Post-process an executable to prepare it for installation. Copies the input
to an intermediate file, optionally strips it with the trailing strip tool
command (an empty first token disables stripping), and moves the result to
the output path. A failing strip tool leaves the output path untouched.`,
	Args: cobra.MinimumNArgs(1),
	Run:  doPostprocess,
}

func init() {
	rootCmd.AddCommand(postprocessCmd)
	postprocessCmd.Flags().StringVar(&postprocessInputFile, "input-file", "", "executable to use as input")
	postprocessCmd.Flags().StringVar(&postprocessOutputFile, "output-file", "", "where to write the result")
	postprocessCmd.Flags().VarP(&flagStripOption, "strip-option", "", "whether to strip the executable, one of "+flagStripOption.HelpString())
	postprocessCmd.RegisterFlagCompletionFunc("strip-option", flagStripOption.CompletionFunc())
	postprocessCmd.MarkFlagRequired("input-file")
	postprocessCmd.MarkFlagRequired("output-file")
	postprocessCmd.MarkFlagRequired("strip-option")
	// the strip tool keeps its own flags
	postprocessCmd.Flags().SetInterspersed(false)
}
