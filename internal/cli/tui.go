package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/search"
	"github.com/matzehuels/algoviz/pkg/session"
)

// Node styles by frame state
var (
	nodeIdleStyle    = lipgloss.NewStyle().Foreground(colorDim)
	nodeVisitedStyle = lipgloss.NewStyle().Foreground(colorBlue)
	nodeCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow).Underline(true)
	nodeTargetStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	playHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

const defaultPlayWidth = 60

// =============================================================================
// PlayModel - Interactive search replay
// =============================================================================

// PlayModel is the bubbletea model that steps through a visit log on key
// presses.
type PlayModel struct {
	Session *session.Session
	Width   int
}

// NewPlayModel creates a model positioned before the first visit.
func NewPlayModel(s *session.Session) PlayModel {
	return PlayModel{Session: s, Width: defaultPlayWidth}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := m.Session
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n", " ", "enter":
			s.Next()
		case "left", "h", "p", "backspace":
			s.Prev()
		case "home", "g":
			s.Seek(0)
		case "end", "G":
			s.Seek(s.Log.Len())
		case "r":
			s.Reset()
		}
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width, 20)
	}
	return m, nil
}

func (m PlayModel) View() string {
	s := m.Session
	var b strings.Builder

	title := string(s.Algorithm)
	if info := s.Algorithm.Info(); info.Title != "" {
		title = info.Title
	}
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s → %s", title, s.Target)))
	b.WriteString("\n")
	b.WriteString(playHelpStyle.Render("←/→ step  g/G start/end  r reset  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.treeView(s.Frame()))
	b.WriteString("\n")

	if e, ok := s.Current(); ok {
		b.WriteString(StyleDim.Render("visiting ") + StyleValue.Render(e.Node) + StyleDim.Render(entryCosts(e)))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("path: ") + s.Path())
	b.WriteString("\n\n")

	status := s.Status()
	switch {
	case s.Found():
		status = StyleSuccess.Render(status)
	case s.Done():
		status = StyleWarning.Render(status)
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("[%d/%d]", s.Step, s.Log.Len())))
	b.WriteString("\n")
	return b.String()
}

// treeView draws one centered line per level with each label styled by its
// frame state.
func (m PlayModel) treeView(f render.Frame) string {
	t := m.Session.Tree
	if t == nil {
		return ""
	}
	var lines []string
	for level := 0; level <= t.Depth(); level++ {
		var labels []string
		for _, n := range t.LevelNodes(level) {
			labels = append(labels, nodeStyle(f.State(n.Label)).Render(n.Label))
		}
		line := strings.Join(labels, strings.Repeat(" ", max(1, 8-2*level)))
		lines = append(lines, lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, line))
	}
	return strings.Join(lines, "\n\n") + "\n"
}

func nodeStyle(s render.State) lipgloss.Style {
	switch s {
	case render.StateVisited:
		return nodeVisitedStyle
	case render.StateCurrent:
		return nodeCurrentStyle
	case render.StateTarget:
		return nodeTargetStyle
	}
	return nodeIdleStyle
}

// entryCosts formats the cost annotations a strategy records.
func entryCosts(e search.Entry) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("depth %d", e.Depth))
	if e.Cost != nil {
		parts = append(parts, fmt.Sprintf("cost %d", *e.Cost))
	}
	if e.G != nil {
		parts = append(parts, fmt.Sprintf("g %d", *e.G))
	}
	if e.H != nil {
		parts = append(parts, fmt.Sprintf("h %d", *e.H))
	}
	if e.F != nil {
		parts = append(parts, fmt.Sprintf("f %d", *e.F))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
