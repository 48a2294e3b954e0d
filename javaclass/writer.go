package javaclass

import "io"

const (
	// DefaultIndent is one indentation level.
	DefaultIndent = "  "

	// DefaultAttribsPerLine is the number of array elements per output line.
	DefaultAttribsPerLine = 4
)

// Format holds the layout settings used during serialization.
// Zero fields fall back to the defaults.
type Format struct {
	Indent         string
	AttribsPerLine int
}

// DefaultFormat returns the layout of the upstream resource compiler.
func DefaultFormat() Format {
	return Format{
		Indent:         DefaultIndent,
		AttribsPerLine: DefaultAttribsPerLine,
	}
}

func (f Format) normalize() Format {
	if f.Indent == "" {
		f.Indent = DefaultIndent
	}
	if f.AttribsPerLine <= 0 {
		f.AttribsPerLine = DefaultAttribsPerLine
	}
	return f
}

// Writer is the output sink handed to members. It carries the Format and
// remembers the first write error; later writes become no-ops.
type Writer struct {
	out    io.Writer
	format Format
	err    error
}

// NewWriter wraps out with the given format.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format.normalize()}
}

// Format returns the normalized format in use.
func (w *Writer) Format() Format {
	return w.format
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.out.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Print writes s.
func (w *Writer) Print(s string) {
	_, _ = io.WriteString(w, s)
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}
