package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/kestrel/generator"
	"github.com/simonhull/firebird-suite/kestrel/output"
)

// GenerateCmd creates and returns the 'generate' command
func GenerateCmd() *cobra.Command {
	var flags buildFlags
	var force, skip, diff, dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the R class from the resource manifest",
		Long: `Generate R.java from the resource manifest.

The class is written to <out>/<package path>/<class>.java. When the file
already exists with different content you are asked what to do, unless
one of --force, --skip or --diff decides for you.

Examples:
  kestrel generate
  kestrel generate --manifest res/resources.yml --out src/gen
  kestrel generate --package com.example.lib --non-final-ids
  kestrel generate --symbols gen/R.txt --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := generator.NewResolver(force, skip, diff)
			if err != nil {
				return err
			}
			resolver.SetOutput(cmd.OutOrStdout())

			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}

			res, err := build(cfg)
			if err != nil {
				return err
			}
			output.Verbose(fmt.Sprintf("Generating %s.%s from %s (dry-run=%v, force=%v)",
				res.pkg, cfg.ClassName, cfg.Manifest, dryRun, force))

			result, err := generator.Execute(cmd.Context(), res.operations(), generator.ExecuteOptions{
				DryRun:   dryRun,
				Force:    force,
				Resolver: resolver,
				Writer:   cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			for _, path := range result.Files {
				output.Verbose("Wrote " + path)
			}

			switch {
			case dryRun:
				output.Info(fmt.Sprintf("Dry run: %d file(s) would be written", len(result.Written)))
			case len(result.Written) > 0:
				output.Success(fmt.Sprintf("Generated %s.%s (%d resources)", res.pkg, cfg.ClassName, res.table.Len()))
			default:
				output.Info("Nothing to write")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite changed files without asking")
	cmd.Flags().BoolVar(&skip, "skip", false, "Keep changed files without asking")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show the diff before asking about changed files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")

	return cmd
}
