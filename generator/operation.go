package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrUnchanged is returned by Validate when the file on disk already holds
// exactly the generated content. Execute reports it and writes nothing.
var ErrUnchanged = errors.New("content unchanged")

// Operation represents a file system change that can be validated and then
// staged into a Transaction.
//
// Validate checks if the operation would succeed without touching the disk.
// force=true skips conflict checks (e.g., file already exists).
//
// Stage adds the change to tx. Nothing is written until tx.Commit.
//
// Description returns a human-readable description for output (e.g., "Create gen/com/example/R.java (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Stage(tx *Transaction) error
	Description() string
}

// ConflictError reports an existing file whose content differs from the
// generated content.
type ConflictError struct {
	Path      string
	Existing  []byte
	Generated []byte
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// WriteFileOp creates or replaces a generated file.
//
// Validation behavior:
//   - Rejects nil content (empty is OK)
//   - Returns ErrUnchanged when the file already has the same bytes
//   - Returns a *ConflictError for different existing content unless force=true
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	existing, err := os.ReadFile(op.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", op.Path, err)
	}

	if bytes.Equal(existing, op.Content) {
		return ErrUnchanged
	}
	if force {
		return nil
	}
	return &ConflictError{Path: op.Path, Existing: existing, Generated: op.Content}
}

func (op *WriteFileOp) Stage(tx *Transaction) error {
	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	tx.AddFile(op.Path, op.Content, mode)
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}
