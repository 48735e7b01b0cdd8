// Package notify shows probe results to the user, either on the console or
// in a modal dialog.
package notify

import (
	"io"
)

// Title is used as the caption of every dialog
const Title = "Java Version"

// Severity picks the icon or color of a message
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	// SeverityStop marks a failed version requirement
	SeverityStop
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityStop:
		return "stop"
	default:
		return "info"
	}
}

// Presenter displays a message with a severity
type Presenter interface {
	Display(message string, severity Severity) error
}

// New returns a console presenter in quiet mode and a modal one otherwise.
// The modal presenter writes to out when no dialog can be shown.
func New(quiet bool, out io.Writer) Presenter {
	console := NewConsole(out)
	if quiet {
		return console
	}
	return NewModal(console)
}
