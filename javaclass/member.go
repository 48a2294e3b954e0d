package javaclass

import (
	"strconv"

	"github.com/simonhull/firebird-suite/kestrel/comment"
	"github.com/simonhull/firebird-suite/kestrel/resource"
)

// Member is anything that can be written inside a generated class.
//
// The set of members is closed: Constant, ResourceArray and Class.
type Member interface {
	// CommentBuilder returns the member's own comment accumulator.
	CommentBuilder() *comment.Builder

	// Empty reports whether the member would write nothing.
	Empty() bool

	// Render writes the member's comment and declaration at prefix.
	// final controls the final modifier on constants. No trailing newline
	// is written.
	Render(w *Writer, prefix string, final bool)

	member()
}

// memberBase carries the comment every member owns.
type memberBase struct {
	comment comment.Builder
}

func (m *memberBase) CommentBuilder() *comment.Builder {
	return &m.comment
}

func (m *memberBase) writeComment(w *Writer, prefix string) {
	// Write errors are kept by w.
	_ = m.comment.Render(w, prefix)
}

func (*memberBase) member() {}

// ConstantKind selects the Java type and rendering of a Constant.
type ConstantKind int

const (
	// KindInt is an unsigned integer rendered in decimal.
	KindInt ConstantKind = iota
	// KindResource is a resource ID rendered in hexadecimal.
	KindResource
	// KindString is text rendered between double quotes, unescaped.
	KindString
)

// String returns the kind name.
func (k ConstantKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindResource:
		return "resource"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Constant is a single public static field.
type Constant struct {
	memberBase
	name string
	kind ConstantKind
	num  uint32
	text string
}

// NewIntMember returns an int constant holding v.
func NewIntMember(name string, v uint32) *Constant {
	return &Constant{name: name, kind: KindInt, num: v}
}

// NewResourceMember returns an int constant holding a resource ID.
func NewResourceMember(name string, id resource.ID) *Constant {
	return &Constant{name: name, kind: KindResource, num: uint32(id)}
}

// NewStringMember returns a String constant. The value is written as-is
// between quotes; callers must escape it themselves.
func NewStringMember(name, v string) *Constant {
	return &Constant{name: name, kind: KindString, text: v}
}

// Name returns the field name.
func (c *Constant) Name() string { return c.name }

// Kind returns the constant's variant.
func (c *Constant) Kind() ConstantKind { return c.kind }

// Empty is always false.
func (c *Constant) Empty() bool { return false }

func (c *Constant) javaType() string {
	if c.kind == KindString {
		return "String"
	}
	return "int"
}

// Value returns the rendered Java literal.
func (c *Constant) Value() string {
	switch c.kind {
	case KindResource:
		return resource.ID(c.num).String()
	case KindString:
		return `"` + c.text + `"`
	default:
		return strconv.FormatUint(uint64(c.num), 10)
	}
}

// Render writes `public static [final ]<type> <name>=<value>;`.
func (c *Constant) Render(w *Writer, prefix string, final bool) {
	c.writeComment(w, prefix)

	w.Print(prefix + "public static ")
	if final {
		w.Print("final ")
	}
	w.Print(c.javaType() + " " + c.name + "=" + c.Value() + ";")
}
