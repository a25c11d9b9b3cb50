package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/folderaudit/internal/audit"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// settings carries the resolved configuration for one audit run.
type settings struct {
	root         string
	recursive    bool
	minSizeKB    float64
	outputPrefix string
	debug        bool
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "folderaudit [flags] [path]",
		Short: "Audit a directory tree and report file statistics and duplicate candidates",
		Long: heredoc.Doc(`
			folderaudit inventories files under a directory tree and reports
			aggregate statistics, a breakdown by file extension, and candidate
			duplicate groupings.

			Results are printed to the console and persisted as CSV reports:
			a primary report with one row per file, plus one duplicates report
			per grouping heuristic (size bucket + extension, case-insensitive
			filename).

			Configuration may also be supplied via a YAML file (--config);
			command-line flags take precedence over file values.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)

				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config file: %w", err)
				}
			}

			set := settings{
				root:         ".",
				recursive:    viper.GetBool("recursive"),
				minSizeKB:    viper.GetFloat64("min_size_kb"),
				outputPrefix: viper.GetString("output"),
				debug:        viper.GetBool("debug"),
			}

			if len(args) > 0 {
				set.root = args[0]
			}

			if set.minSizeKB < 0 {
				return errors.New("min-size-kb cannot be negative")
			}

			if set.outputPrefix == "" {
				return errors.New("output prefix cannot be empty")
			}

			return run(cmd.Context(), set)
		},
	}

	cmd.Flags().BoolP("recursive", "r", true, "Descend into subdirectories")
	cmd.Flags().Float64("min-size-kb", audit.DefaultMinSizeKB, "Inclusive minimum file size in KB")
	cmd.Flags().StringP("output", "o", "folder_audit", "Prefix for the CSV report files")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")

	viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))     //nolint:errcheck // Flag exists
	viper.BindPFlag("min_size_kb", cmd.Flags().Lookup("min-size-kb")) //nolint:errcheck // Flag exists
	viper.BindPFlag("output", cmd.Flags().Lookup("output"))           //nolint:errcheck // Flag exists
	viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))             //nolint:errcheck // Flag exists

	return cmd.Execute()
}
