package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/kestrel/resource"
)

// Table is a compiled resource table: entries with assigned IDs grouped by
// type, plus styleable declarations.
type Table struct {
	Package    string             `yaml:"package"`
	Resources  map[string][]Entry `yaml:"resources"`
	Styleables []Styleable        `yaml:"styleables,omitempty"`
}

// Entry is one resource with its assigned ID.
type Entry struct {
	Name       string      `yaml:"name"`
	ID         resource.ID `yaml:"id"`
	Comment    string      `yaml:"comment,omitempty"`
	Deprecated bool        `yaml:"deprecated,omitempty"`
}

// Styleable groups attributes that a custom view or theme reads together.
// Attrs name entries of the attr type.
type Styleable struct {
	Name    string   `yaml:"name"`
	Comment string   `yaml:"comment,omitempty"`
	Attrs   []string `yaml:"attrs"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	table, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseBytes decodes and validates a manifest. Unknown keys are rejected.
func ParseBytes(data []byte) (*Table, error) {
	var table Table
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := Validate(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

// WriteBytes marshals a table back to YAML.
func WriteBytes(table *Table) ([]byte, error) {
	data, err := yaml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}

// Types returns the resource type names in alphabetical order.
func (t *Table) Types() []string {
	types := make([]string, 0, len(t.Resources))
	for typ := range t.Resources {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Entries returns the entries of typ sorted by name.
func (t *Table) Entries(typ string) []Entry {
	entries := append([]Entry(nil), t.Resources[typ]...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Lookup finds an entry by resource name.
func (t *Table) Lookup(name resource.Name) (Entry, bool) {
	for _, e := range t.Resources[name.Type] {
		if e.Name == name.Entry {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries across all types.
func (t *Table) Len() int {
	n := 0
	for _, entries := range t.Resources {
		n += len(entries)
	}
	return n
}

// Empty reports whether the table declares nothing at all.
func (t *Table) Empty() bool {
	return t.Len() == 0 && len(t.Styleables) == 0
}
