package javaclass

// Qualifier is the modifier placed before `class`.
type Qualifier int

const (
	// QualifierNone declares `public class`.
	QualifierNone Qualifier = iota
	// QualifierStatic declares `public static class`.
	QualifierStatic
)

// Class is a named group of members and is itself a member.
type Class struct {
	memberBase
	name          string
	qualifier     Qualifier
	createIfEmpty bool
	members       []Member
}

// NewClass returns an empty class. With createIfEmpty set the class is always
// written, even with no members; this is what the root class uses.
func NewClass(name string, qualifier Qualifier, createIfEmpty bool) *Class {
	return &Class{
		name:          name,
		qualifier:     qualifier,
		createIfEmpty: createIfEmpty,
	}
}

// AddMember appends m. The class takes ownership of it; m must not be added
// anywhere else.
func (c *Class) AddMember(m Member) {
	c.members = append(c.members, m)
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Members returns the members in emission order.
func (c *Class) Members() []Member {
	return c.members
}

// Empty reports whether the class would be omitted from the output.
func (c *Class) Empty() bool {
	if c.createIfEmpty {
		return false
	}
	for _, m := range c.members {
		if !m.Empty() {
			return false
		}
	}
	return true
}

// Render writes the class declaration with every non-empty member one
// indent deeper, each followed by a newline. An empty class writes nothing.
func (c *Class) Render(w *Writer, prefix string, final bool) {
	if c.Empty() {
		return
	}

	c.writeComment(w, prefix)

	w.Print(prefix + "public ")
	if c.qualifier == QualifierStatic {
		w.Print("static ")
	}
	w.Print("class " + c.name + " {\n")

	inner := prefix + w.Format().Indent
	for _, m := range c.members {
		if m.Empty() {
			continue
		}
		m.Render(w, inner, final)
		w.Print("\n")
	}
	w.Print(prefix + "}")
}
