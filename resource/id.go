// Package resource defines compiled resource identifiers and the naming rules
// used when resources are exposed as Java fields.
package resource

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID is a 32-bit compiled resource identifier laid out as 0xPPTTEEEE
// (package, type, entry).
type ID uint32

// MakeID assembles an identifier from its package, type and entry parts.
func MakeID(pkg, typ uint8, entry uint16) ID {
	return ID(uint32(pkg)<<24 | uint32(typ)<<16 | uint32(entry))
}

// ParseID parses a hexadecimal ("0x7f010000") or decimal identifier.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty resource id")
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid resource id %q: %w", s, err)
	}
	return ID(v), nil
}

// PackageID returns the package byte.
func (id ID) PackageID() uint8 { return uint8(id >> 24) }

// TypeID returns the type byte.
func (id ID) TypeID() uint8 { return uint8(id >> 16) }

// EntryID returns the entry index within the type.
func (id ID) EntryID() uint16 { return uint16(id) }

// IsValid reports whether the identifier has non-zero package and type parts.
// Entry zero is a legal entry index.
func (id ID) IsValid() bool {
	return id.PackageID() != 0 && id.TypeID() != 0
}

// String renders the identifier the way generated sources display it.
func (id ID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// UnmarshalYAML accepts both quoted hex strings and plain integers.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: resource id must be a scalar", node.Line)
	}
	parsed, err := ParseID(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*id = parsed
	return nil
}

// MarshalYAML writes the identifier in its hexadecimal form.
func (id ID) MarshalYAML() (any, error) {
	return id.String(), nil
}
