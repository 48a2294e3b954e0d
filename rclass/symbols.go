package rclass

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/kestrel/javaclass"
)

// Symbols renders the text symbol table (R.txt) for a built root class, one
// symbol per line in the same order as the generated class:
//
//	int attr colorPrimary 0x7f010000
//	int[] styleable Theme { 0x7f010000 }
//	int styleable Theme_colorPrimary 0
//
// Empty type classes contribute nothing. String constants have no R.txt
// form and are left out.
func Symbols(root *javaclass.Class) []byte {
	var buf bytes.Buffer
	for _, m := range root.Members() {
		if cls, ok := m.(*javaclass.Class); ok {
			writeSymbols(&buf, cls)
		}
	}
	return buf.Bytes()
}

func writeSymbols(buf *bytes.Buffer, cls *javaclass.Class) {
	for _, m := range cls.Members() {
		switch m := m.(type) {
		case *javaclass.Constant:
			if m.Kind() == javaclass.KindString {
				continue
			}
			fmt.Fprintf(buf, "int %s %s %s\n", cls.Name(), m.Name(), m.Value())
		case *javaclass.ResourceArray:
			ids := m.Elements()
			list := " "
			if len(ids) > 0 {
				parts := make([]string, len(ids))
				for i, id := range ids {
					parts[i] = id.String()
				}
				list = " " + strings.Join(parts, ", ") + " "
			}
			fmt.Fprintf(buf, "int[] %s %s {%s}\n", cls.Name(), m.Name(), list)
		case *javaclass.Class:
			writeSymbols(buf, m)
		}
	}
}
