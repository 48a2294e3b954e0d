package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simonhull/firebird-suite/kestrel/resource"
)

// javaIdentifier matches names usable as Java fields and classes.
var javaIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// AttrType is the resource type styleables refer to.
const AttrType = "attr"

// StyleableType is reserved for the generated styleable class.
const StyleableType = "styleable"

// ValidationError represents a manifest problem with its location
type ValidationError struct {
	Field      string // Path (e.g., "resources.string[0].id")
	Message    string
	Suggestion string // optional
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "found %d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Validate checks names, IDs and styleable references. Every problem found is
// reported, not only the first.
func Validate(t *Table) error {
	var errs ValidationErrors
	add := func(field, msg, suggestion string) {
		errs = append(errs, ValidationError{Field: field, Message: msg, Suggestion: suggestion})
	}

	if t.Package != "" && !IsPackageName(t.Package) {
		add("package", fmt.Sprintf("%q is not a valid Java package name", t.Package), "use dotted identifiers like com.example.app")
	}

	owners := make(map[resource.ID]string)
	for _, typ := range t.Types() {
		if typ == StyleableType {
			add("resources."+typ, "styleable entries are generated from styleables", "declare them under styleables:")
			continue
		}
		if !IsJavaIdentifier(typ) {
			add("resources."+typ, fmt.Sprintf("type %q is not a valid Java class name", typ), "")
		}

		// keyed by field name: a.b and a_b both become a_b
		seen := make(map[string]string)
		for i, e := range t.Resources[typ] {
			field := fmt.Sprintf("resources.%s[%d]", typ, i)
			fieldName := resource.FieldName(e.Name)
			prev, dup := seen[fieldName]
			switch {
			case e.Name == "":
				add(field+".name", "name is required", "")
			case !IsJavaIdentifier(fieldName):
				add(field+".name", fmt.Sprintf("%q does not map to a Java field name", e.Name), "")
			case dup && prev == e.Name:
				add(field+".name", fmt.Sprintf("duplicate %s/%s", typ, e.Name), "")
			case dup:
				add(field+".name", fmt.Sprintf("%s/%s collides with %s/%s as field %s", typ, e.Name, typ, prev, fieldName), "rename one of them")
			}
			if !dup {
				seen[fieldName] = e.Name
			}

			if !e.ID.IsValid() {
				add(field+".id", fmt.Sprintf("%s is not a valid resource id", e.ID), "ids look like 0x7f010000")
				continue
			}
			name := typ + "/" + e.Name
			if prev, ok := owners[e.ID]; ok {
				add(field+".id", fmt.Sprintf("%s is already assigned to %s", e.ID, prev), "")
				continue
			}
			owners[e.ID] = name
		}
	}

	seen := make(map[string]string)
	for i, s := range t.Styleables {
		field := fmt.Sprintf("styleables[%d]", i)
		fieldName := resource.FieldName(s.Name)
		prev, dup := seen[fieldName]
		switch {
		case s.Name == "":
			add(field+".name", "name is required", "")
		case !IsJavaIdentifier(fieldName):
			add(field+".name", fmt.Sprintf("%q does not map to a Java field name", s.Name), "")
		case dup && prev == s.Name:
			add(field+".name", fmt.Sprintf("duplicate styleable %s", s.Name), "")
		case dup:
			add(field+".name", fmt.Sprintf("styleable %s collides with %s as field %s", s.Name, prev, fieldName), "rename one of them")
		}
		if !dup {
			seen[fieldName] = s.Name
		}

		attrs := make(map[string]bool)
		for j, attr := range s.Attrs {
			attrField := fmt.Sprintf("%s.attrs[%d]", field, j)
			if _, ok := t.Lookup(resource.Name{Type: AttrType, Entry: attr}); !ok {
				add(attrField, fmt.Sprintf("unknown attr %q", attr), "declare it under resources.attr")
			}
			if attrs[attr] {
				add(attrField, fmt.Sprintf("attr %q listed twice", attr), "")
			}
			attrs[attr] = true
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsJavaIdentifier reports whether s can name a Java class or field.
func IsJavaIdentifier(s string) bool {
	return javaIdentifier.MatchString(s)
}

// IsPackageName reports whether pkg is a dotted list of Java identifiers.
func IsPackageName(pkg string) bool {
	for _, part := range strings.Split(pkg, ".") {
		if !javaIdentifier.MatchString(part) {
			return false
		}
	}
	return true
}
