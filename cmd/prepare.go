// v8-codegen prepare
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frida/v8-codegen/internal/manifest"
	"github.com/frida/v8-codegen/internal/prepare"
)

var (
	prepareOutputDir    string
	prepareSubdirs      []string
	prepareStampFile    string
	prepareManifestPath string
)

func doPrepare(cmd *cobra.Command, args []string) {
	outputDir := prepareOutputDir
	subdirs := prepareSubdirs

	if prepareManifestPath != "" {
		m, err := manifest.Load(prepareManifestPath)
		if err != nil {
			fatal(err)
		}
		declared, err := m.ResolveSubdirs(manifest.HostEnv())
		if err != nil {
			fatal(err)
		}
		subdirs = append(subdirPaths(declared), subdirs...)
		if outputDir == "" {
			outputDir = m.OutputDirectory
		}
	}

	if outputDir == "" {
		fatalUsage(cmd, "--output-directory is required (or declare it in a manifest)")
	}

	if err := prepare.Dirs(outputDir, subdirs); err != nil {
		fatal(err)
	}
	if err := prepare.TouchStamp(prepareStampFile); err != nil {
		fatal(err)
	}
}

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare output directories for the code generator",
	Long: `Prepare output directories for the code generator. Creates every declared
subdirectory under the output root, then touches the stamp file the build
system uses to track staleness.`,
	Args: cobra.NoArgs,
	Run:  doPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)
	prepareCmd.Flags().StringVar(&prepareOutputDir, "output-directory", "", "directory where output will be written")
	prepareCmd.Flags().StringArrayVar(&prepareSubdirs, "prepare-subdir", nil, "prepare a specific output subdir")
	prepareCmd.Flags().StringVar(&prepareStampFile, "touch-stamp-file", "", "stamp file to touch")
	prepareCmd.Flags().StringVar(&prepareManifestPath, "manifest", "", "read output directory and subdirs from a TOML manifest")
	prepareCmd.MarkFlagRequired("touch-stamp-file")
}
