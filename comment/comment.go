// Package comment accumulates Javadoc text for generated members and writes
// it back out as a comment block followed by any implied annotations.
//
// # Markers
//
// Two markers inside appended text are recognised:
//
//   - @deprecated stays in the text and adds a @Deprecated annotation
//   - @SystemApi is removed from the text and adds
//     @android.annotation.SystemApi
//
// # Output
//
//	b := &comment.Builder{}
//	b.AppendComment("The app name.\n@deprecated use title")
//	b.Render(out, "  ")
//
// writes
//
//	  /**
//	   * The app name.
//	   * @deprecated use title
//	   */
//	  @Deprecated
package comment

import (
	"io"
	"strings"
)

const (
	deprecatedMarker = "@deprecated"
	systemAPIMarker  = "@SystemApi"
)

type annotation uint8

const (
	annotationDeprecated annotation = 1 << iota
	annotationSystemAPI
)

// Builder is the comment accumulator owned by a single generated member.
// The zero value is ready to use.
type Builder struct {
	lines       []string
	annotations annotation
}

// AppendComment adds text line by line. Each line is trimmed and blank lines
// are dropped.
func (b *Builder) AppendComment(text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			b.appendLine(line)
		}
	}
}

func (b *Builder) appendLine(line string) {
	if strings.Contains(line, deprecatedMarker) {
		b.annotations |= annotationDeprecated
	}
	if idx := strings.Index(line, systemAPIMarker); idx >= 0 {
		b.annotations |= annotationSystemAPI
		line = line[:idx] + line[idx+len(systemAPIMarker):]
	}
	if strings.TrimSpace(line) == "" {
		return
	}
	b.lines = append(b.lines, " * "+line)
}

// AppendNewLine adds an empty paragraph line. It is ignored until some text
// has been appended.
func (b *Builder) AppendNewLine() {
	if len(b.lines) > 0 {
		b.lines = append(b.lines, " *")
	}
}

// SetDeprecated requests the @Deprecated annotation without adding text.
func (b *Builder) SetDeprecated() {
	b.annotations |= annotationDeprecated
}

// HasComments reports whether a comment block will be written.
func (b *Builder) HasComments() bool {
	return len(b.lines) > 0
}

// Deprecated reports whether a @deprecated marker was seen.
func (b *Builder) Deprecated() bool {
	return b.annotations&annotationDeprecated != 0
}

// SystemAPI reports whether a @SystemApi marker was seen.
func (b *Builder) SystemAPI() bool {
	return b.annotations&annotationSystemAPI != 0
}

// Render writes the comment block and annotations, each line starting with
// prefix and ending with a newline. Nothing is written for an empty builder.
func (b *Builder) Render(w io.Writer, prefix string) error {
	var sb strings.Builder
	if len(b.lines) > 0 {
		sb.WriteString(prefix + "/**\n")
		for _, line := range b.lines {
			sb.WriteString(prefix + line + "\n")
		}
		sb.WriteString(prefix + " */\n")
	}
	if b.Deprecated() {
		sb.WriteString(prefix + "@Deprecated\n")
	}
	if b.SystemAPI() {
		sb.WriteString(prefix + "@android.annotation.SystemApi\n")
	}
	if sb.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
