package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirtar/internal/dirtar"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute(args []string) error {
	var options dirtar.Options

	allowedFormats := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "dirtar -d <path> [-o <path>]",
		Short: "Archive each subdirectory of a directory into its own tar file",
		Long: heredoc.Doc(`
			dirtar archives each immediate subdirectory of a source directory into
			its own uncompressed tar file, one <name>.tar per subdirectory.

			Archives are written flat into the output directory (the source itself
			when --output is not given) and created with paths relative to the
			source, so each tar's internal root is the subdirectory name. An
			archive that already exists is skipped, never overwritten, so re-runs
			only pick up new subdirectories.

			Hidden subdirectories are ignored. The system tar binary does the
			packing; dirtar only drives it.
		`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if options.Version {
				//nolint:forbidigo // Version output to console
				fmt.Println(c.version)

				return nil
			}

			if options.Directory == "" {
				return errors.New("source directory is required: pass it with --directory/-d")
			}

			if !slices.Contains(allowedFormats, options.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", options.Format, allowedFormats)
			}

			return logic(cmd.Context(), options)
		},
	}

	cmd.Flags().StringVarP(&options.Directory, "directory", "d", "", "Source directory whose subdirectories are archived")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "", "Output directory for the .tar files (defaults to the source)")
	cmd.Flags().StringVarP(&options.Format, "format", "f", "table", "Summary format: table or json")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	cmd.Flags().SortFlags = false
	cmd.SetArgs(args)

	return cmd.Execute()
}
