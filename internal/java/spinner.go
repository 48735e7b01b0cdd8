package java

import (
	"fmt"
	"io"

	"jvcheck/internal/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerFinishedMsg struct{}

type scannerModel struct {
	spinner  spinner.Model
	title    string
	quitting bool
}

func newScannerModel(title string) scannerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.InfoStyle

	return scannerModel{
		spinner: s,
		title:   title,
	}
}

func (m scannerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinnerFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scannerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.spinner.View(), m.title)
}

// WithScanner shows a spinner on out while fn runs.
// fn runs exactly once and has finished when WithScanner returns, even if
// the spinner could not start or was interrupted.
func WithScanner(out io.Writer, title string, fn func(), opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithOutput(out)}, opts...)
	p := tea.NewProgram(newScannerModel(title), opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
		p.Send(spinnerFinishedMsg{})
	}()

	_, err := p.Run()
	<-done

	return err
}
