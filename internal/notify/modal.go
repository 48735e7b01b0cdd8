package notify

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// errNoDisplay is returned by a dialog backend that has nowhere to draw
var errNoDisplay = errors.New("no interactive display available")

// Modal shows each message in a blocking dialog. When the dialog cannot be
// shown the message goes to the fallback presenter instead.
type Modal struct {
	title    string
	show     func(title, message string, severity Severity) error
	fallback Presenter
}

// NewModal creates a modal presenter using the platform dialog
func NewModal(fallback Presenter) *Modal {
	return &Modal{
		title:    Title,
		show:     showDialog,
		fallback: fallback,
	}
}

// Display blocks until the user dismisses the dialog
func (m *Modal) Display(message string, severity Severity) error {
	err := m.show(m.title, message, severity)
	if err == nil {
		return nil
	}

	if !errors.Is(err, errNoDisplay) {
		log.WithError(err).WithField("severity", severity).Debug("dialog failed, printing instead")
	}
	if m.fallback == nil {
		return err
	}
	return m.fallback.Display(message, severity)
}
