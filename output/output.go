package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var (
	mu          sync.Mutex
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verboseMode
}

// SetWriter redirects all messages to w. A nil w restores stdout.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// Writer returns the current destination.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

func emit(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, s)
}

// Success prints a success message with 🪶 emoji and green color.
// Use this for completed operations.
func Success(msg string) {
	emit(successStyle.Render("🪶 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
func Error(msg string) {
	emit(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	emit(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("kestrel generate --dry-run")
func Step(msg string) {
	emit(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	if IsVerbose() {
		emit(stepStyle.Render("🔍 " + msg))
	}
}
