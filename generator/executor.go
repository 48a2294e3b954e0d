package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCancelled is returned when the user cancels at a conflict prompt.
var ErrCancelled = errors.New("generation cancelled")

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun   bool
	Force    bool
	Resolver *Resolver // Decides conflicts; nil makes every conflict an error
	Writer   io.Writer // Where to write output (defaults to os.Stdout)
}

// Result lists what happened to each operation, by description.
type Result struct {
	Written   []string
	Skipped   []string
	Unchanged []string
	Files     []string // paths committed to disk, in write order; empty on dry run
}

// Execute runs operations in two phases. Phase 1 validates every operation
// and resolves conflicts; phase 2 stages the accepted ones into a single
// transaction and commits it, or only reports them in dry-run mode.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) (*Result, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	res := &Result{}

	// Phase 1: Validate all operations
	accepted := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := op.Validate(ctx, opts.Force)
		var conflict *ConflictError
		switch {
		case err == nil:
			accepted = append(accepted, op)
		case errors.Is(err, ErrUnchanged):
			res.Unchanged = append(res.Unchanged, op.Description())
			fmt.Fprintf(opts.Writer, "= %s (unchanged)\n", op.Description())
		case errors.As(err, &conflict) && opts.Resolver != nil:
			resolution, rerr := opts.Resolver.ResolveConflict(conflict.Path, conflict.Existing, conflict.Generated)
			if rerr != nil {
				return res, fmt.Errorf("resolving conflict for %s: %w", conflict.Path, rerr)
			}
			switch resolution {
			case Overwrite:
				accepted = append(accepted, op)
			case Skip:
				res.Skipped = append(res.Skipped, op.Description())
				fmt.Fprintf(opts.Writer, "- Skip %s\n", conflict.Path)
			default:
				return res, ErrCancelled
			}
		default:
			return res, fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Commit or report
	if opts.DryRun {
		for _, op := range accepted {
			res.Written = append(res.Written, op.Description())
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
		}
		return res, nil
	}

	tx := NewTransaction()
	for _, op := range accepted {
		if err := op.Stage(tx); err != nil {
			return res, fmt.Errorf("staging failed: %w", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("execution failed: %w", err)
	}
	res.Files = tx.Paths()

	for _, op := range accepted {
		res.Written = append(res.Written, op.Description())
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}
	return res, nil
}
