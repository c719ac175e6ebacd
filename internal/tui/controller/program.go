package controller

import (
	"bracketctl/internal/tui/model"
	"bracketctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the bracket view.
func NewProgram(
	fetcher model.Fetcher,
	madness int,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
	opts ...tea.ProgramOption,
) *tea.Program {
	m := model.InitialModel(fetcher, madness, debugMode, logChannel)
	app := NewAppModel(m)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(app, opts...)
}
