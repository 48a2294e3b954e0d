package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConflictResolution represents what to do with an existing generated file
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

func (c ConflictResolution) String() string {
	switch c {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	case ShowDiff:
		return "diff"
	default:
		return "cancel"
	}
}

// ConflictStrategy decides what happens to one conflicting file
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// pagerThreshold is the diff length above which the full-screen pager is used
const pagerThreshold = 20

// Lipgloss styles for terminal output
var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// Resolver handles stale generated files according to the --force, --skip
// and --diff flags, prompting when none is given.
type Resolver struct {
	strategy ConflictStrategy
	diffGen  *DiffGenerator
	out      io.Writer
}

// NewResolver creates a conflict resolver with the specified flags.
// Returns error if --force is combined with --skip or --diff.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	if force && (skip || diff) {
		return nil, fmt.Errorf("--force cannot be combined with --skip or --diff")
	}
	return NewResolverWithStrategy(selectStrategy(force, skip, diff)), nil
}

// NewResolverWithStrategy creates a resolver around a custom strategy.
func NewResolverWithStrategy(s ConflictStrategy) *Resolver {
	return &Resolver{
		strategy: s,
		diffGen:  NewDiffGenerator(),
		out:      os.Stdout,
	}
}

// SetOutput changes where inline diffs are printed.
func (r *Resolver) SetOutput(w io.Writer) {
	r.out = w
}

// ResolveConflict returns the decision for path. A ShowDiff answer prints
// the diff and asks the strategy again.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	for {
		resolution, err := r.strategy.Resolve(path, existing, newer)
		if err != nil || resolution != ShowDiff {
			return resolution, err
		}
		fmt.Fprintln(r.out, r.diffGen.GenerateDiffDefault(path, path+" (generated)", existing, newer))
	}
}

// selectStrategy chooses the appropriate strategy based on flags
func selectStrategy(force, skip, diff bool) ConflictStrategy {
	switch {
	case force:
		return &ForceStrategy{}
	case skip:
		return &SkipStrategy{}
	case diff:
		return &DiffStrategy{diffGen: NewDiffGenerator(), out: os.Stdout}
	default:
		return &InteractiveStrategy{}
	}
}

// ForceStrategy always regenerates
type ForceStrategy struct{}

func (s *ForceStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the file on disk
type SkipStrategy struct{}

func (s *SkipStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy shows the diff first, then prompts
type DiffStrategy struct {
	diffGen *DiffGenerator
	out     io.Writer
}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	diff := s.diffGen.GenerateDiffDefault(path, path+" (generated)", existing, newer)

	if strings.Count(diff, "\n") > pagerThreshold {
		p := tea.NewProgram(newPagerModel(path, diff), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show diff: %w", err)
		}
		if final.(pagerModel).cancelled {
			return Cancel, nil
		}
	} else {
		fmt.Fprintln(s.out, diff)
	}

	return (&InteractiveStrategy{}).Resolve(path, existing, newer)
}

// InteractiveStrategy shows a menu with keyboard navigation
type InteractiveStrategy struct{}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	info, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return Cancel, fmt.Errorf("failed to stat file: %w", err)
	}

	p := tea.NewProgram(newPromptModel(path, info, len(newer)))
	final, err := p.Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to show menu: %w", err)
	}

	m := final.(promptModel)
	if m.selected == nil {
		return Cancel, nil
	}
	return *m.selected, nil
}

// promptChoice pairs a menu label with its resolution
type promptChoice struct {
	label      string
	resolution ConflictResolution
}

var promptChoices = []promptChoice{
	{"Show diff against the regenerated source", ShowDiff},
	{"Keep the file on disk", Skip},
	{"Replace with the regenerated source", Overwrite},
	{"Cancel generation", Cancel},
}

// promptModel is the BubbleTea model for the conflict menu
type promptModel struct {
	path     string
	info     os.FileInfo
	newSize  int
	cursor   int
	selected *ConflictResolution
}

func newPromptModel(path string, info os.FileInfo, newSize int) promptModel {
	return promptModel{path: path, info: info, newSize: newSize}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(promptChoices)-1 {
			m.cursor++
		}
	case "enter":
		r := promptChoices[m.cursor].resolution
		m.selected = &r
		return m, tea.Quit
	}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  Generated file differs: ") + titleStyle.Render(m.path) + "\n")
	if m.info != nil {
		b.WriteString(mutedStyle.Render("    Last modified: ") + formatRelativeTime(time.Since(m.info.ModTime())) + "\n")
		b.WriteString(mutedStyle.Render("    Size: ") + formatFileSize(m.info.Size()) +
			mutedStyle.Render(" → ") + formatFileSize(int64(m.newSize)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, c := range promptChoices {
		if i == m.cursor {
			b.WriteString("    " + selectedStyle.Render("> "+c.label) + "\n")
		} else {
			b.WriteString("      " + c.label + "\n")
		}
	}
	return b.String()
}

// pagerModel is the BubbleTea model for scrolling through long diffs
type pagerModel struct {
	path      string
	diff      string
	viewport  viewport.Model
	ready     bool
	cancelled bool
}

func newPagerModel(path, diff string) pagerModel {
	return pagerModel{path: path, diff: diff}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "q", "enter":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// header and footer take one line each
		width, height := msg.Width-2, msg.Height-2
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = width, height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := borderStyle.Render("── ") + titleStyle.Render(m.path) + borderStyle.Render(" ──")
	footer := mutedStyle.Render(fmt.Sprintf("%3.f%%  [↑/↓] Scroll  [q] Decide  [esc] Cancel", m.viewport.ScrollPercent()*100))
	return header + "\n" + m.viewport.View() + "\n" + footer
}

// timeUnits drives formatRelativeTime, largest unit first
var timeUnits = []struct {
	name string
	size time.Duration
}{
	{"year", 365 * 24 * time.Hour},
	{"month", 30 * 24 * time.Hour},
	{"week", 7 * 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
}

// formatRelativeTime formats an age as relative (e.g., "2 hours ago")
func formatRelativeTime(age time.Duration) string {
	for _, u := range timeUnits {
		if n := int(age / u.size); n >= 1 {
			if n == 1 {
				return "1 " + u.name + " ago"
			}
			return fmt.Sprintf("%d %ss ago", n, u.name)
		}
	}
	return "just now"
}

// formatFileSize formats file size in human-readable format
func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
