package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for interactive mode.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed/help text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Label:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Border: lipgloss.NewStyle().Foreground(t.Primary),
		Help:   lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Banner renders a boxed header with a title and a status tag,
// used at the top of the interactive voice manager.
func (s Styles) Banner(title, status string, width int) string {
	bc := s.Border
	t := s.Title.Render(title)
	st := s.Help.Render("[" + status + "]")

	// Width: │(1) + space(1) + title + space(1) + status + padding + space(1) + │(1)
	minWidth := lipgloss.Width(t) + lipgloss.Width(st) + 5
	if width < minWidth {
		width = minWidth
	}
	padding := max(0, width-5-lipgloss.Width(t)-lipgloss.Width(st))

	var b strings.Builder
	b.WriteString(bc.Render("╭" + strings.Repeat("─", width-2) + "╮"))
	b.WriteByte('\n')
	b.WriteString(bc.Render("│") + " " + t + " " + st +
		strings.Repeat(" ", padding) + " " + bc.Render("│"))
	b.WriteByte('\n')
	b.WriteString(bc.Render("╰" + strings.Repeat("─", width-2) + "╯"))
	return b.String()
}

// Rule renders a section separator with an embedded label: ├─Label────┤
func (s Styles) Rule(label string, width int) string {
	labelText := s.Label.Render(label)
	// Width: ├(1) + ─(1) + labelText(?) + ─...(padding) + ┤(1)
	padding := max(0, width-3-lipgloss.Width(labelText))
	return s.Border.Render("├") + s.Border.Render("─") + labelText +
		s.Border.Render(strings.Repeat("─", padding)) + s.Border.Render("┤")
}

// Prompt renders the interactive prompt with the current context name.
func (s Styles) Prompt(contextName string) string {
	if contextName == "" {
		contextName = "(none)"
	}
	return s.Label.Render("["+contextName+"]") + " minimax-speech> "
}

// Truncate clips a string to the given display width,
// handling multi-byte characters correctly. Longer input is
// cut and suffixed with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	currentWidth := 0
	for i, r := range runes {
		w := lipgloss.Width(string(r))
		if currentWidth+w > width-1 {
			return string(runes[:i]) + "…"
		}
		currentWidth += w
	}
	return s
}
