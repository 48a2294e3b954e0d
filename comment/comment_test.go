package comment

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, b *Builder, prefix string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf, prefix))
	return buf.String()
}

func TestBuilder_Empty(t *testing.T) {
	b := &Builder{}

	assert.False(t, b.HasComments())
	assert.Equal(t, "", render(t, b, "  "))

	// A new line on its own never opens a block.
	b.AppendNewLine()
	assert.False(t, b.HasComments())
	assert.Equal(t, "", render(t, b, ""))
}

func TestBuilder_AppendComment(t *testing.T) {
	b := &Builder{}
	b.AppendComment("  The application name.  \n\n   Shown in the launcher.")

	want := "  /**\n" +
		"   * The application name.\n" +
		"   * Shown in the launcher.\n" +
		"   */\n"
	assert.Equal(t, want, render(t, b, "  "))
}

func TestBuilder_AppendNewLine(t *testing.T) {
	b := &Builder{}
	b.AppendComment("First paragraph.")
	b.AppendNewLine()
	b.AppendComment("Second paragraph.")

	want := "/**\n" +
		" * First paragraph.\n" +
		" *\n" +
		" * Second paragraph.\n" +
		" */\n"
	assert.Equal(t, want, render(t, b, ""))
}

func TestBuilder_Deprecated(t *testing.T) {
	b := &Builder{}
	b.AppendComment("Old title.\n@deprecated use app_title")

	assert.True(t, b.Deprecated())
	assert.False(t, b.SystemAPI())

	want := "/**\n" +
		" * Old title.\n" +
		" * @deprecated use app_title\n" +
		" */\n" +
		"@Deprecated\n"
	assert.Equal(t, want, render(t, b, ""))
}

func TestBuilder_SetDeprecated(t *testing.T) {
	b := &Builder{}
	b.SetDeprecated()

	assert.True(t, b.Deprecated())
	assert.False(t, b.HasComments())
	assert.Equal(t, "  @Deprecated\n", render(t, b, "  "))
}

func TestBuilder_SystemAPI(t *testing.T) {
	t.Run("marker is stripped from text", func(t *testing.T) {
		b := &Builder{}
		b.AppendComment("@SystemApi Hidden color.")

		assert.True(t, b.SystemAPI())
		want := "    /**\n" +
			"     *  Hidden color.\n" +
			"     */\n" +
			"    @android.annotation.SystemApi\n"
		assert.Equal(t, want, render(t, b, "    "))
	})

	t.Run("marker alone writes only the annotation", func(t *testing.T) {
		b := &Builder{}
		b.AppendComment("@SystemApi")

		assert.False(t, b.HasComments())
		assert.Equal(t, "@android.annotation.SystemApi\n", render(t, b, ""))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestBuilder_WriteError(t *testing.T) {
	b := &Builder{}
	b.AppendComment("text")

	err := b.Render(failingWriter{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// Nothing to write means the sink is never touched.
	assert.NoError(t, (&Builder{}).Render(failingWriter{}, ""))
}
