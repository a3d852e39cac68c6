package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for file paths and project names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for the dry-run marker.
	ColorYellow = lipgloss.Color("220")
)

var (
	// StyleNoun styles identifiable nouns (paths, project names, tool names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles the dry-run marker.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// minPathColumnWidth keeps descriptions aligned for short paths.
const minPathColumnWidth = 28

// FileLine is one row of the created-file summary.
type FileLine struct {
	Path        string
	Description string
}

// FormatFileLine renders a path followed by a dimmed description, padded to
// width.
func FormatFileLine(line FileLine, width int) string {
	padding := width - len(line.Path)
	if padding < 2 {
		padding = 2
	}
	if line.Description == "" {
		return "  " + StyleNoun.Render(line.Path)
	}
	return "  " + StyleNoun.Render(line.Path) + strings.Repeat(" ", padding) + StyleDim.Render(line.Description)
}

// RenderSummary renders the list of files under a heading. The path column
// is as wide as the longest path.
func RenderSummary(heading string, lines []FileLine) string {
	width := minPathColumnWidth
	for _, l := range lines {
		if len(l.Path)+2 > width {
			width = len(l.Path) + 2
		}
	}

	var b strings.Builder
	b.WriteString(StyleSummary.Render(heading))
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString(FormatFileLine(l, width))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
