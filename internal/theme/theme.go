package theme

import "github.com/charmbracelet/lipgloss"

// jvcheck theme - palette inspired by Java
var (
	Primary = lipgloss.Color("#f89820") // Java orange

	// Semantic colors
	Error   = lipgloss.Color("#ff3b30") // Red
	Warning = lipgloss.Color("#ffcc00") // Yellow
	Info    = lipgloss.Color("#5ac8fa") // Light blue

	Text = lipgloss.Color("#ffffff") // White
)

// Styles used by the presenters and the probe spinner.
// None of them pad or border, so rendering never changes line widths.
var (
	Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info)

	// Installed/required detail lines
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text)
)

// RenderLines applies style to every line of text separately.
// lipgloss pads multi-line blocks to a common width; rendering per line
// keeps the text byte-for-byte apart from the escape codes.
func RenderLines(style lipgloss.Style, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = style.Render(line)
	}
	return out
}
