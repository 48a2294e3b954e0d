package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/kestrel/config"
	"github.com/simonhull/firebird-suite/kestrel/input"
	"github.com/simonhull/firebird-suite/kestrel/logger"
	"github.com/simonhull/firebird-suite/kestrel/manifest"
	"github.com/simonhull/firebird-suite/kestrel/output"
)

// InitCmd creates and returns the 'init' command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a kestrel.yml config file",
		Long: `Ask a few questions and write kestrel.yml in the current directory
(or at --config). Pressing Enter accepts the default shown in brackets;
with no input at all the defaults are written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.FileName
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			p := input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			cfg := config.Default()

			cfg.Manifest = p.Prompt("Resource manifest", cfg.Manifest)
			cfg.Package = p.Prompt("Java package (blank uses the manifest's)", manifestPackage(cfg.Manifest))
			cfg.ClassName = p.Prompt("Class name", cfg.ClassName)
			cfg.Output.Dir = p.Prompt("Output directory", cfg.Output.Dir)
			cfg.Final = p.Confirm("Final resource IDs? (no for library modules)", cfg.Final)
			if p.Confirm("Write an R.txt symbol table?", false) {
				cfg.Output.Symbols = filepath.Join(cfg.Output.Dir, "R.txt")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}

			output.Success("Created " + path)
			output.Info("Next steps:")
			output.Step("kestrel generate")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

// manifestPackage returns the package declared by the manifest at path, or
// "" when it cannot be read
func manifestPackage(path string) string {
	table, err := manifest.Load(path)
	if err != nil {
		logger.Default().Debugw("no package from manifest", logger.FieldManifest, path, "error", err)
		return ""
	}
	return table.Package
}
