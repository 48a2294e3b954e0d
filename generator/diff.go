package generator

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// maxDiffLines bounds the inputs the diff engine will accept.
const maxDiffLines = 10000

// DiffOptions configures how diffs are generated and displayed.
// All fields are optional.
type DiffOptions struct {
	// ContextLines is the number of unchanged lines to show around changes.
	// Default: 3
	ContextLines int

	// ShowLineNums displays old-file line numbers in the left margin.
	ShowLineNums bool

	// Plain disables styling and line truncation, producing a diff that
	// can be written to logs or compared in tests.
	Plain bool
}

// DiffGenerator produces unified diffs between the file on disk and the
// regenerated source. Its buffers are reused between calls, so one
// generator must not be shared across goroutines.
type DiffGenerator struct {
	v     []int
	trace [][]int
}

// NewDiffGenerator creates a diff generator optimized for repeated use.
func NewDiffGenerator() *DiffGenerator {
	return &DiffGenerator{}
}

// GenerateDiffDefault is a convenience wrapper using default options.
func (dg *DiffGenerator) GenerateDiffDefault(oldPath, newPath string, old, newer []byte) string {
	return dg.GenerateDiff(oldPath, newPath, old, newer, nil)
}

// GenerateDiff returns a unified diff, or "" when both sides hold the same
// lines.
func (dg *DiffGenerator) GenerateDiff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	o := DiffOptions{ContextLines: 3}
	if opts != nil {
		o = *opts
		if o.ContextLines <= 0 {
			o.ContextLines = 3
		}
	}

	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))
	if len(oldLines) > maxDiffLines || len(newLines) > maxDiffLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	hunks := buildHunks(dg.computeEditScript(oldLines, newLines), o.ContextLines)
	if len(hunks) == 0 {
		return ""
	}

	width := 0
	if !o.Plain {
		width = getTerminalWidth()
	}

	var buf strings.Builder
	buf.WriteString(o.style(headerStyle, "--- "+oldPath) + "\n")
	buf.WriteString(o.style(headerStyle, "+++ "+newPath) + "\n")
	for _, h := range hunks {
		buf.WriteString(formatHunk(h, &o, width))
	}
	return buf.String()
}

func (o *DiffOptions) style(s lipgloss.Style, text string) string {
	if o.Plain {
		return text
	}
	return s.Render(text)
}

// GenerateDiff creates a unified diff with a throwaway generator.
func GenerateDiff(oldPath, newPath string, old, newer []byte, opts *DiffOptions) string {
	return NewDiffGenerator().GenerateDiff(oldPath, newPath, old, newer, opts)
}

// editOp is the kind of a line in an edit script
type editOp int

const (
	opUnchanged editOp = iota
	opAdded
	opRemoved
)

// diffLine is a single line in an edit script
type diffLine struct {
	oldLineNum int // 0 if added
	newLineNum int // 0 if removed
	content    string
	op         editOp
}

// hunk is a contiguous block of changes with surrounding context
type hunk struct {
	oldStart int
	oldCount int
	newStart int
	newCount int
	lines    []diffLine
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)

// computeEditScript finds the shortest edit script with the Myers
// O(ND) algorithm. V is indexed by k+offset.
func (dg *DiffGenerator) computeEditScript(old, newer []string) []diffLine {
	n, m := len(old), len(newer)
	maxD := n + m
	offset := maxD + 1

	if cap(dg.v) < 2*offset+1 {
		dg.v = make([]int, 2*offset+1)
	}
	dg.v = dg.v[:2*offset+1]
	clear(dg.v)
	dg.trace = dg.trace[:0]

	var found bool
	for d := 0; d <= maxD && !found; d++ {
		dg.trace = append(dg.trace, append([]int(nil), dg.v...))

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && dg.v[offset+k-1] < dg.v[offset+k+1]) {
				x = dg.v[offset+k+1]
			} else {
				x = dg.v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}
			dg.v[offset+k] = x
			if x >= n && y >= m {
				found = true
				break
			}
		}
	}

	// Walk the trace backwards, collecting lines in reverse.
	var rev []diffLine
	x, y := n, m
	for d := len(dg.trace) - 1; d >= 0; d-- {
		v := dg.trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			rev = append(rev, diffLine{oldLineNum: x + 1, newLineNum: y + 1, content: old[x], op: opUnchanged})
		}
		if d == 0 {
			break
		}
		if x == prevX {
			y--
			rev = append(rev, diffLine{newLineNum: y + 1, content: newer[y], op: opAdded})
		} else {
			x--
			rev = append(rev, diffLine{oldLineNum: x + 1, content: old[x], op: opRemoved})
		}
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// buildHunks groups changed lines with up to contextLines of context on
// each side. Changes separated by at most 2*contextLines unchanged lines
// share a hunk.
func buildHunks(lines []diffLine, contextLines int) []hunk {
	var hunks []hunk
	start, end := -1, -1

	flush := func() {
		if start < 0 {
			return
		}
		lo := max(start-contextLines, 0)
		hi := min(end+contextLines+1, len(lines))
		h := hunk{lines: lines[lo:hi]}
		finalizeHunk(&h)
		hunks = append(hunks, h)
		start, end = -1, -1
	}

	for i, line := range lines {
		if line.op == opUnchanged {
			continue
		}
		if start >= 0 && i-end-1 > 2*contextLines {
			flush()
		}
		if start < 0 {
			start = i
		}
		end = i
	}
	flush()
	return hunks
}

// finalizeHunk calculates the start and count values for a hunk
func finalizeHunk(h *hunk) {
	for _, line := range h.lines {
		if line.oldLineNum > 0 {
			if h.oldStart == 0 {
				h.oldStart = line.oldLineNum
			}
			h.oldCount++
		}
		if line.newLineNum > 0 {
			if h.newStart == 0 {
				h.newStart = line.newLineNum
			}
			h.newCount++
		}
	}
}

// formatHunk formats a hunk as unified diff text
func formatHunk(h hunk, opts *DiffOptions, termWidth int) string {
	var buf strings.Builder

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(opts.style(hunkStyle, header) + "\n")

	for _, line := range h.lines {
		content := line.content
		if !opts.Plain {
			content = truncateLine(content, termWidth-10)
		}

		var formatted string
		switch line.op {
		case opAdded:
			formatted = opts.style(addedStyle, "+"+content)
		case opRemoved:
			formatted = opts.style(removedStyle, "-"+content)
		default:
			formatted = " " + content
		}

		if opts.ShowLineNums {
			num := "    "
			if line.oldLineNum > 0 {
				num = fmt.Sprintf("%4d", line.oldLineNum)
			}
			formatted = opts.style(lineNumStyle, num) + " " + formatted
		}

		buf.WriteString(formatted + "\n")
	}
	return buf.String()
}

// isBinary reports whether data holds a NUL byte in its first 8 KiB
func isBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), 8192)], 0) != -1
}

// splitLines splits content into lines. A trailing newline does not add
// an empty final line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// truncateLine shortens s to maxWidth runes, marking the cut with "..."
func truncateLine(s string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}
	return string([]rune(s)[:maxWidth-3]) + "..."
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
