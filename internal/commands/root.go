package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/kestrel"
	"github.com/simonhull/firebird-suite/kestrel/logger"
	"github.com/simonhull/firebird-suite/kestrel/output"
)

// RootCmd creates and returns the root command for the Kestrel CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "kestrel",
		Short: "Generate Java R classes from resource manifests",
		Long: `Kestrel turns a YAML resource manifest into the R.java class Android
code uses to refer to resources by ID.

Each resource type becomes a static nested class of int constants, and
each styleable becomes an int[] of attribute IDs plus index constants.

Settings are read from kestrel.yml (see 'kestrel init'), overridden by
KESTREL_* environment variables and then by command flags.`,
		Version:       kestrel.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			output.SetWriter(cmd.OutOrStdout())
			logger.SetDefault(logger.New(cmd.ErrOrStderr(), verbose))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Path to the config file (default ./kestrel.yml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Kestrel v%s\n", kestrel.Version)
		},
	})

	return cmd
}
