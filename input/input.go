package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompter reads answers line by line from one reader. Sharing the reader
// between prompts keeps buffered input from being lost when several
// answers are piped in at once.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

var std = NewPrompter(os.Stdin, os.Stdout)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	pkg := p.Prompt("Java package", "com.example.app")
//	// Displays: Java package (com.example.app): _
func (p *Prompter) Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(p.out, promptStyle.Render(message)+": ")
	}

	answer, ok := p.readLine()
	if !ok || answer == "" {
		return defaultValue
	}
	return answer
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true.
func (p *Prompter) Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	answer, ok := p.readLine()
	if !ok || answer == "" {
		return defaultYes
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// readLine returns the next trimmed line. A final line without a newline
// still counts; ok is false only when nothing was read.
func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Prompt asks on stdin. See Prompter.Prompt.
func Prompt(message, defaultValue string) string {
	return std.Prompt(message, defaultValue)
}

// Confirm asks on stdin. See Prompter.Confirm.
func Confirm(message string, defaultYes bool) bool {
	return std.Confirm(message, defaultYes)
}
