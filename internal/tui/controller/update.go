package controller

import (
	"bracketctl/internal/tui/model"
	"bracketctl/internal/tui/view"
	"bracketctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update applies one message to the model.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch is the central message routing function for the TUI application.
// It directs each message to its handler and then refreshes the log viewport.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
		// too frequent to log
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.Keys.Quit) {
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Goodbye!"
		m.Shutdown()
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsgGlobal(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.BracketResultMsg:
		m, cmd = handleBracketResultMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else {
			m.BracketViewport, cmd = m.BracketViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type: %T", msg)
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// handleBracketResultMsg stores a finished request. Results of a cancelled
// or superseded request are dropped.
func handleBracketResultMsg(m *model.Model, msg model.BracketResultMsg) (*model.Model, tea.Cmd) {
	if !m.ApplyResult(msg) {
		LogDebug(m, controllerSubsystem, "Dropping stale bracket result (generation %d, current %d)",
			msg.Generation, m.RequestGeneration)
		return m, nil
	}

	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Bracket generation failed at madness level %d", msg.Madness)
		return m, nil
	}

	LogInfo(controllerSubsystem, "Bracket generated at madness level %d", msg.Madness)
	m.BracketViewport.GotoTop()
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	// Debug lines only reach the activity log in debug mode.
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
	}
	return m
}

// refreshLogViewport re-renders the log overlay when new lines arrived or its width changed.
func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}

	wasAtBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if wasAtBottom {
		// Only autoscroll when the user is not reading older lines.
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}
