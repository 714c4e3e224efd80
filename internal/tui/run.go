package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the form and blocks until the user quits. Nil in and out use the
// terminal.
func Run(in io.Reader, out io.Writer) error {
	var opts []tea.ProgramOption
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	_, err := tea.NewProgram(New(), opts...).Run()
	return err
}
