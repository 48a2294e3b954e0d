// Package rclass turns a resource table into the generated R class: one
// static class per resource type holding an int field per entry, and a
// styleable class holding an attribute array plus index constants for each
// styleable.
package rclass

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/simonhull/firebird-suite/kestrel/javaclass"
	"github.com/simonhull/firebird-suite/kestrel/logger"
	"github.com/simonhull/firebird-suite/kestrel/manifest"
	"github.com/simonhull/firebird-suite/kestrel/resource"
)

// DefaultClassName is the name of the generated root class.
const DefaultClassName = "R"

// DefaultHeader is written at the top of every generated file.
const DefaultHeader = "/* AUTO-GENERATED FILE. DO NOT MODIFY.\n" +
	" *\n" +
	" * This class was automatically generated by the\n" +
	" * kestrel tool from the resource data it found. It\n" +
	" * should not be modified by hand.\n" +
	" */\n\n"

// ErrNotGenerated is returned by RenderClass when the root class is empty and no
// file would be produced.
var ErrNotGenerated = errors.New("class is empty, nothing generated")

// Options controls what Build produces and how RenderClass writes it.
type Options struct {
	Package   string // Java package; falls back to the manifest package
	ClassName string // root class name, default R
	Final     bool   // emit final constants (false for library modules)
	Comments  bool   // copy manifest comments into Javadoc
	Header    string
	Format    javaclass.Format
}

// DefaultOptions returns options for an application module.
func DefaultOptions() Options {
	return Options{
		ClassName: DefaultClassName,
		Final:     true,
		Comments:  true,
		Header:    DefaultHeader,
		Format:    javaclass.DefaultFormat(),
	}
}

// Builder assembles the class tree for one table.
type Builder struct {
	opts Options
	log  *zap.SugaredLogger
}

// NewBuilder creates a builder. A nil log uses the package default.
func NewBuilder(opts Options, log *zap.SugaredLogger) *Builder {
	if opts.ClassName == "" {
		opts.ClassName = DefaultClassName
	}
	if log == nil {
		log = logger.Default()
	}
	return &Builder{opts: opts, log: log}
}

// Package returns the Java package the class belongs to.
func (b *Builder) Package(table *manifest.Table) string {
	if b.opts.Package != "" {
		return b.opts.Package
	}
	return table.Package
}

// Build creates the root class. The root is always written, even for an
// empty table; type classes without entries are pruned during serialization.
func (b *Builder) Build(table *manifest.Table) *javaclass.Class {
	root := javaclass.NewClass(b.opts.ClassName, javaclass.QualifierNone, true)

	for _, typ := range table.Types() {
		cls := b.buildType(table, typ)
		if cls.Empty() {
			b.log.Debugw("pruned empty type class", logger.FieldType, typ)
		}
		root.AddMember(cls)
	}

	if len(table.Styleables) > 0 {
		root.AddMember(b.buildStyleables(table))
	}

	b.log.Debugw("built class",
		logger.FieldClass, b.opts.ClassName,
		logger.FieldPackage, b.Package(table),
		logger.FieldCount, table.Len(),
	)
	return root
}

func (b *Builder) buildType(table *manifest.Table, typ string) *javaclass.Class {
	cls := javaclass.NewClass(typ, javaclass.QualifierStatic, false)
	for _, e := range table.Entries(typ) {
		m := javaclass.NewResourceMember(resource.FieldName(e.Name), e.ID)
		if b.opts.Comments && e.Comment != "" {
			m.CommentBuilder().AppendComment(e.Comment)
		}
		switch {
		case e.Deprecated && b.opts.Comments:
			m.CommentBuilder().AppendComment("@deprecated")
		case e.Deprecated:
			m.CommentBuilder().SetDeprecated()
		}
		cls.AddMember(m)
	}
	return cls
}

// styleableAttr is one attribute of a styleable after resolution.
type styleableAttr struct {
	name string
	id   resource.ID
}

func (b *Builder) resolveAttrs(table *manifest.Table, s manifest.Styleable) []styleableAttr {
	attrs := make([]styleableAttr, 0, len(s.Attrs))
	for _, name := range s.Attrs {
		e, ok := table.Lookup(resource.Name{Type: manifest.AttrType, Entry: name})
		if !ok {
			b.log.Warnw("skipping unknown attr", logger.FieldStyleable, s.Name, "attr", name)
			continue
		}
		attrs = append(attrs, styleableAttr{name: name, id: e.ID})
	}
	// The runtime looks attributes up by binary search, so the array is
	// ordered by ID.
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].id < attrs[j].id })
	return attrs
}

func (b *Builder) buildStyleables(table *manifest.Table) *javaclass.Class {
	cls := javaclass.NewClass(manifest.StyleableType, javaclass.QualifierStatic, false)

	styleables := append([]manifest.Styleable(nil), table.Styleables...)
	sortStyleables(styleables)

	for _, s := range styleables {
		field := resource.FieldName(s.Name)
		attrs := b.resolveAttrs(table, s)

		arr := javaclass.NewResourceArrayMember(field)
		for _, a := range attrs {
			arr.AddElement(a.id)
		}
		if b.opts.Comments {
			b.commentStyleable(arr, s, attrs)
		}
		cls.AddMember(arr)

		for i, a := range attrs {
			idx := javaclass.NewIntMember(field+"_"+resource.FieldName(a.name), uint32(i))
			if b.opts.Comments {
				idx.CommentBuilder().AppendComment(fmt.Sprintf(
					"This symbol is the offset where the {@link %s.attr#%s} attribute's value can be found in the {@link #%s} array.",
					b.opts.ClassName, resource.FieldName(a.name), field))
			}
			cls.AddMember(idx)
		}

		b.log.Debugw("built styleable", logger.FieldStyleable, s.Name, logger.FieldCount, len(attrs))
	}
	return cls
}

func sortStyleables(styleables []manifest.Styleable) {
	sort.SliceStable(styleables, func(i, j int) bool { return styleables[i].Name < styleables[j].Name })
}

func (b *Builder) commentStyleable(arr *javaclass.ResourceArray, s manifest.Styleable, attrs []styleableAttr) {
	cb := arr.CommentBuilder()
	if s.Comment != "" {
		cb.AppendComment(s.Comment)
	} else {
		cb.AppendComment(fmt.Sprintf("Attributes that can be used with a %s.", s.Name))
	}
	if len(attrs) == 0 {
		return
	}
	cb.AppendNewLine()
	cb.AppendComment("<p>Includes the following attributes:</p>")
	for _, a := range attrs {
		cb.AppendComment(fmt.Sprintf("<code>{@link #%s_%s %s}</code>",
			resource.FieldName(s.Name), resource.FieldName(a.name), a.name))
	}
}

// RenderClass serializes a root class built by Build as a Java source file.
func (b *Builder) RenderClass(root *javaclass.Class, pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("no Java package for class %s: set package in the manifest or config", root.Name())
	}

	var buf bytes.Buffer
	file := javaclass.File{
		Package: pkg,
		Final:   b.opts.Final,
		Header:  b.opts.Header,
		Format:  b.opts.Format,
	}
	ok, err := file.Write(&buf, root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s.%s: %w", pkg, root.Name(), ErrNotGenerated)
	}

	b.log.Debugw("rendered class", logger.FieldClass, root.Name(), logger.FieldBytes, buf.Len())
	return buf.Bytes(), nil
}
