package javaclass

import (
	"fmt"
	"io"
)

// File describes one generated compilation unit.
type File struct {
	Package string
	Final   bool   // final modifier on constants
	Header  string // written verbatim before the package line
	Format  Format
}

// Write writes the header, the package declaration and root to out.
//
// When root is empty nothing is written and Write returns false with a nil
// error; this is a no-op, not a failure. Otherwise it returns true together
// with the first error from out, if any.
func (f File) Write(out io.Writer, root *Class) (bool, error) {
	if root.Empty() {
		return false, nil
	}

	w := NewWriter(out, f.Format)
	w.Print(f.Header)
	w.Print("package " + f.Package + ";\n\n")
	root.Render(w, "", f.Final)

	if err := w.Err(); err != nil {
		return true, fmt.Errorf("writing class %s: %w", root.Name(), err)
	}
	return true, nil
}

// WriteJavaFile writes root in package pkg using the default format and no
// header.
func WriteJavaFile(out io.Writer, root *Class, pkg string, final bool) (bool, error) {
	return File{Package: pkg, Final: final, Format: DefaultFormat()}.Write(out, root)
}
