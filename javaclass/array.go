package javaclass

import "github.com/simonhull/firebird-suite/kestrel/resource"

// ResourceArray is a public static final int[] of resource IDs, such as the
// attribute list of a styleable.
type ResourceArray struct {
	memberBase
	name     string
	elements []resource.ID
}

// NewResourceArrayMember returns an empty array named name.
func NewResourceArrayMember(name string) *ResourceArray {
	return &ResourceArray{name: name}
}

// AddElement appends id. Order is preserved in the output.
func (a *ResourceArray) AddElement(id resource.ID) {
	a.elements = append(a.elements, id)
}

// Name returns the field name.
func (a *ResourceArray) Name() string { return a.name }

// Len returns the number of elements.
func (a *ResourceArray) Len() int { return len(a.elements) }

// Elements returns a copy of the elements in append order.
func (a *ResourceArray) Elements() []resource.ID {
	return append([]resource.ID(nil), a.elements...)
}

// Empty is always false, even without elements.
func (a *ResourceArray) Empty() bool { return false }

// Render writes the array literal, Format.AttribsPerLine elements per line
// at two indents past prefix, closed by `};` at one indent. Arrays are always
// final.
func (a *ResourceArray) Render(w *Writer, prefix string, _ bool) {
	a.writeComment(w, prefix)

	f := w.Format()
	w.Print(prefix + "public static final int[] " + a.name + "={")

	for i, id := range a.elements {
		if i%f.AttribsPerLine == 0 {
			w.Print("\n" + prefix + f.Indent + f.Indent)
		}
		w.Print(id.String())
		if i < len(a.elements)-1 {
			w.Print(", ")
		}
	}
	w.Print("\n" + prefix + f.Indent + "};")
}
