package javaclass

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/kestrel/resource"
)

// write serializes m with the default format.
func write(m Member, prefix string, final bool) string {
	var buf bytes.Buffer
	m.Render(NewWriter(&buf, DefaultFormat()), prefix, final)
	return buf.String()
}

func TestConstant_Render(t *testing.T) {
	tests := []struct {
		name   string
		member *Constant
		prefix string
		final  bool
		want   string
	}{
		{
			name:   "string non-final",
			member: NewStringMember("NAME", "foo"),
			want:   `public static String NAME="foo";`,
		},
		{
			name:   "string final",
			member: NewStringMember("NAME", "foo"),
			final:  true,
			want:   `public static final String NAME="foo";`,
		},
		{
			name:   "int is decimal",
			member: NewIntMember("Theme_colorPrimary", 12),
			prefix: "    ",
			final:  true,
			want:   "    public static final int Theme_colorPrimary=12;",
		},
		{
			name:   "max uint32",
			member: NewIntMember("big", 0xffffffff),
			want:   "public static int big=4294967295;",
		},
		{
			name:   "resource is hex",
			member: NewResourceMember("app_name", 0x7f030000),
			prefix: "  ",
			want:   "  public static int app_name=0x7f030000;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.member.Empty())
			assert.Equal(t, tt.want, write(tt.member, tt.prefix, tt.final))
		})
	}
}

// String values are deliberately written without escaping. Callers that need
// quotes or backslashes must escape before constructing the member.
func TestConstant_StringIsNotEscaped(t *testing.T) {
	m := NewStringMember("QUOTE", `say "hi"\n`)

	assert.Equal(t, `public static String QUOTE="say "hi"\n";`, write(m, "", false))
}

func TestConstant_Accessors(t *testing.T) {
	c := NewResourceMember("icon", 0x7f020001)

	assert.Equal(t, "icon", c.Name())
	assert.Equal(t, KindResource, c.Kind())
	assert.Equal(t, "0x7f020001", c.Value())
	assert.Equal(t, "resource", c.Kind().String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", ConstantKind(42).String())
}

func TestConstant_Comment(t *testing.T) {
	m := NewResourceMember("old_title", 0x7f030001)
	m.CommentBuilder().AppendComment("Old title.\n@deprecated")

	want := "  /**\n" +
		"   * Old title.\n" +
		"   * @deprecated\n" +
		"   */\n" +
		"  @Deprecated\n" +
		"  public static final int old_title=0x7f030001;"
	assert.Equal(t, want, write(m, "  ", true))
}

func TestResourceArray_Wrapping(t *testing.T) {
	a := NewResourceArrayMember("Theme")
	for _, id := range []resource.ID{0x7f010001, 0x7f010002, 0x7f010003, 0x7f010004, 0x7f010005} {
		a.AddElement(id)
	}

	want := "  public static final int[] Theme={\n" +
		"      0x7f010001, 0x7f010002, 0x7f010003, 0x7f010004, \n" +
		"      0x7f010005\n" +
		"    };"
	assert.Equal(t, want, write(a, "  ", false))
	assert.Equal(t, 5, a.Len())
}

func TestResourceArray_Sizes(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{
			name:  "no elements",
			count: 0,
			want:  "public static final int[] A={\n  };",
		},
		{
			name:  "one element",
			count: 1,
			want:  "public static final int[] A={\n    0x7f010000\n  };",
		},
		{
			name:  "exactly one group",
			count: 4,
			want: "public static final int[] A={\n" +
				"    0x7f010000, 0x7f010001, 0x7f010002, 0x7f010003\n" +
				"  };",
		},
		{
			name:  "two full groups",
			count: 8,
			want: "public static final int[] A={\n" +
				"    0x7f010000, 0x7f010001, 0x7f010002, 0x7f010003, \n" +
				"    0x7f010004, 0x7f010005, 0x7f010006, 0x7f010007\n" +
				"  };",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewResourceArrayMember("A")
			for i := 0; i < tt.count; i++ {
				a.AddElement(resource.MakeID(0x7f, 0x01, uint16(i)))
			}
			assert.False(t, a.Empty())
			assert.Equal(t, tt.want, write(a, "", true))
		})
	}
}

func TestResourceArray_PreservesOrder(t *testing.T) {
	ids := []resource.ID{0x7f010009, 0x7f010001, 0x7f010009, 0x7f010004, 0x7f010002, 0x7f010003}
	a := NewResourceArrayMember("Order")
	for _, id := range ids {
		a.AddElement(id)
	}

	assert.Equal(t, ids, a.Elements())

	out := write(a, "", false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	var got []string
	for _, line := range lines[1:3] {
		for _, field := range strings.Split(strings.TrimSpace(line), ",") {
			if f := strings.TrimSpace(field); f != "" {
				got = append(got, f)
			}
		}
	}
	var want []string
	for _, id := range ids {
		want = append(want, id.String())
	}
	assert.Equal(t, want, got, "no sorting or deduplication")
	assert.Equal(t, "  };", lines[3])
}

func TestResourceArray_CustomFormat(t *testing.T) {
	a := NewResourceArrayMember("A")
	for i := 0; i < 3; i++ {
		a.AddElement(resource.MakeID(0x7f, 0x01, uint16(i)))
	}

	var buf bytes.Buffer
	a.Render(NewWriter(&buf, Format{Indent: "\t", AttribsPerLine: 2}), "", false)

	want := "public static final int[] A={\n" +
		"\t\t0x7f010000, 0x7f010001, \n" +
		"\t\t0x7f010002\n" +
		"\t};"
	assert.Equal(t, want, buf.String())
}

func TestResourceArray_Comment(t *testing.T) {
	a := NewResourceArrayMember("Empty")
	a.CommentBuilder().AppendComment("No attributes.")

	want := "/**\n * No attributes.\n */\npublic static final int[] Empty={\n  };"
	assert.Equal(t, want, write(a, "", false))
}

func TestFormat_Normalize(t *testing.T) {
	assert.Equal(t, DefaultFormat(), Format{}.normalize())
	assert.Equal(t, DefaultFormat(), Format{AttribsPerLine: -3}.normalize())
	assert.Equal(t, Format{Indent: "\t", AttribsPerLine: 8}, Format{Indent: "\t", AttribsPerLine: 8}.normalize())
	assert.Equal(t, DefaultFormat(), NewWriter(&bytes.Buffer{}, Format{}).Format())
}
