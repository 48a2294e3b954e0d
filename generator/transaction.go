package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Transaction represents a set of file writes that are committed together.
// If any write fails, files already written are restored to their previous
// content (or removed if they did not exist), and directories created for
// them are removed.
type Transaction struct {
	files     []stagedFile
	committed bool
}

// stagedFile is a pending write
type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// backup records what a path held before the transaction touched it
type backup struct {
	path    string
	content []byte
	mode    os.FileMode
	existed bool
}

// NewTransaction creates an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{}
}

// AddFile stages a file write (doesn't write yet)
func (t *Transaction) AddFile(path string, content []byte, mode os.FileMode) {
	t.files = append(t.files, stagedFile{path: path, content: content, mode: mode})
}

// Paths returns the staged paths in order.
func (t *Transaction) Paths() []string {
	paths := make([]string, len(t.files))
	for i, f := range t.files {
		paths[i] = f.path
	}
	return paths
}

// Commit writes all staged files. Each file is written to a temporary file
// in the same directory and renamed into place.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	done := make([]backup, 0, len(t.files))
	var dirs []string // shallowest first within each file
	for _, f := range t.files {
		b, err := snapshot(f.path)
		if err != nil {
			t.restore(done, dirs)
			return err
		}

		missing := missingDirs(filepath.Dir(f.path))
		for i := len(missing) - 1; i >= 0; i-- {
			dirs = append(dirs, missing[i])
		}
		if err := writeAtomic(f.path, f.content, f.mode); err != nil {
			t.restore(done, dirs)
			return err
		}
		done = append(done, b)
	}

	t.committed = true
	return nil
}

func snapshot(path string) (backup, error) {
	b := backup{path: path}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return b, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("failed to back up %s: %w", path, err)
	}
	b.content, b.mode, b.existed = content, info.Mode().Perm(), true
	return b, nil
}

// missingDirs lists the ancestors of dir, dir included, that do not exist
// yet, deepest first.
func missingDirs(dir string) []string {
	var missing []string
	for {
		if _, err := os.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
			return missing
		}
		missing = append(missing, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return missing
		}
		dir = parent
	}
}

func writeAtomic(path string, content []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(content)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// restore puts back every file written so far, newest first, then removes
// the directories created for them, deepest first
func (t *Transaction) restore(done []backup, dirs []string) {
	for i := len(done) - 1; i >= 0; i-- {
		b := done[i]
		if b.existed {
			_ = os.WriteFile(b.path, b.content, b.mode) // Best effort
		} else {
			os.Remove(b.path) // Best effort, ignore errors
		}
	}
	for i := len(dirs) - 1; i >= 0; i-- {
		os.Remove(dirs[i]) // Leaves non-empty directories in place
	}
}
