package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/kestrel/generator"
	"github.com/simonhull/firebird-suite/kestrel/output"
)

// ErrStale is returned by check when a generated file is missing or out of
// date.
var ErrStale = errors.New("generated sources are out of date")

// CheckCmd creates and returns the 'check' command
func CheckCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify generated sources match the manifest",
		Long: `Render the R class in memory and compare it with the files on disk.

Prints a diff for every file that differs and exits non-zero, so CI can
catch a manifest change that was not followed by 'kestrel generate'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}

			res, err := build(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			diffGen := generator.NewDiffGenerator()
			opts := &generator.DiffOptions{Plain: !isTerminal(out)}

			stale := 0
			for _, f := range res.outputs() {
				existing, err := os.ReadFile(f.path)
				switch {
				case errors.Is(err, fs.ErrNotExist):
					stale++
					output.Error(fmt.Sprintf("%s is missing", f.path))
					continue
				case err != nil:
					return fmt.Errorf("cannot read %s: %w", f.path, err)
				}

				if bytes.Equal(existing, f.content) {
					output.Verbose(fmt.Sprintf("%s is up to date", f.path))
					continue
				}
				stale++
				output.Error(fmt.Sprintf("%s is out of date", f.path))
				fmt.Fprint(out, diffGen.GenerateDiff(f.path, f.path+" (generated)", existing, f.content, opts))
			}

			if stale > 0 {
				output.Step("Run 'kestrel generate' to update")
				return fmt.Errorf("%w: %d file(s)", ErrStale, stale)
			}
			output.Success(fmt.Sprintf("%s.%s is up to date", res.pkg, cfg.ClassName))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// isTerminal reports whether w is a terminal that can show colours
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
