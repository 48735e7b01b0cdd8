package notify

import (
	"fmt"
	"io"
	"strings"

	"jvcheck/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Console prints messages as text lines
type Console struct {
	out io.Writer
}

// NewConsole creates a console presenter writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Display prints the first line in the severity's color and the rest plain
func (c *Console) Display(message string, severity Severity) error {
	lines := strings.Split(message, "\n")
	head := theme.RenderLines(headlineStyle(severity), lines[:1])
	body := theme.RenderLines(theme.ValueStyle, lines[1:])

	_, err := fmt.Fprintln(c.out, strings.Join(append(head, body...), "\n"))
	return err
}

func headlineStyle(severity Severity) lipgloss.Style {
	switch severity {
	case SeverityWarning:
		return theme.WarningStyle
	case SeverityError, SeverityStop:
		return theme.ErrorStyle
	default:
		return theme.InfoStyle
	}
}
