// Package generator writes generated sources to disk with conflict
// resolution and rollback support.
//
// # Features
//
//   - Two-phase execution: validate every operation, then commit
//   - Conflict resolution (interactive, --force, --skip, --diff)
//   - Myers diff for comparing a stale file with its regenerated content
//   - Transactions for atomic multi-file writes
//
// # Transactions
//
// Use transactions to ensure all files are written together:
//
//	tx := generator.NewTransaction()
//	tx.AddFile("gen/com/example/R.java", source, 0644)
//	tx.AddFile("gen/R.txt", symbols, 0644)
//
//	if err := tx.Commit(); err != nil {
//	    // Files written so far were restored
//	    return err
//	}
//
// Each file is written to a temporary sibling and renamed into place. If a
// write fails, files already written get their previous content back.
package generator
