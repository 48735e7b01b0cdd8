//go:build !windows

package notify

import (
	"os"
	"strings"

	"jvcheck/internal/theme"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// showDialog draws a note in the terminal and waits for the user to confirm
func showDialog(title, message string, severity Severity) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoDisplay
	}

	lines := strings.Split(message, "\n")
	heading := headlineStyle(severity).Render(lines[0])

	note := huh.NewNote().
		Title(theme.Title.Render(title)).
		Description(heading + "\n" + strings.Join(lines[1:], "\n")).
		Next(true).
		NextLabel("OK")

	return huh.NewForm(huh.NewGroup(note)).Run()
}
