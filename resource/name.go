package resource

import (
	"fmt"
	"strings"
)

// Name identifies a resource by type and entry, e.g. string/app_name.
type Name struct {
	Type  string
	Entry string
}

// ParseName splits "type/entry". A leading '@' is tolerated.
func ParseName(s string) (Name, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	typ, entry, ok := strings.Cut(s, "/")
	if !ok || typ == "" || entry == "" {
		return Name{}, fmt.Errorf("invalid resource name %q (want type/entry)", s)
	}
	return Name{Type: typ, Entry: entry}, nil
}

func (n Name) String() string {
	return n.Type + "/" + n.Entry
}

// FieldName converts a resource entry name into a Java field name.
// Characters legal in resource names but not in Java identifiers ('.' and
// '-') become underscores.
//
// Example: Theme.AppCompat.Light → Theme_AppCompat_Light
func FieldName(entry string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-':
			return '_'
		}
		return r
	}, entry)
}
