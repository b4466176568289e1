package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings, numbers
	colorGreen  = lipgloss.Color("35")  // Green - success, target node
	colorYellow = lipgloss.Color("220") // Amber - warnings, current node
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - visited nodes, commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text, idle nodes
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for counters.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// status writes human-oriented progress lines. Commands point it at stderr
// so stdout stays clean for JSON and YAML output.
type status struct {
	w io.Writer
}

func statusTo(w io.Writer) status { return status{w: w} }

func (s status) line(icon, msg string) {
	fmt.Fprintln(s.w, icon+" "+msg)
}

func (s status) success(format string, args ...any) {
	s.line(styleIconSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func (s status) errorf(format string, args ...any) {
	s.line(styleIconError.Render(iconError), fmt.Sprintf(format, args...))
}

func (s status) warning(format string, args ...any) {
	s.line(styleIconWarning.Render(iconWarning), StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (s status) info(format string, args ...any) {
	s.line(styleIconInfo.Render(iconInfo), fmt.Sprintf(format, args...))
}

// detail prints an indented, dimmed line.
func (s status) detail(format string, args ...any) {
	fmt.Fprintln(s.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints a written output path.
func (s status) file(path string) {
	fmt.Fprintln(s.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func (s status) keyValue(key, value string) {
	fmt.Fprintln(s.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// stats prints tree size and whether the result came from the cache.
func (s status) stats(nodeCount, edgeCount int, cached bool) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount)),
		StyleDim.Render(fmt.Sprintf("%d edges", edgeCount)),
	}
	if cached {
		parts = append(parts, styleCached.Render(iconCached))
	} else {
		parts = append(parts, styleComputed.Render(iconFresh))
	}
	fmt.Fprintln(s.w, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

// nextStep suggests a follow-up command.
func (s status) nextStep(description, cmd string) {
	fmt.Fprintln(s.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}
