package controller

import (
	"strings"
	"time"

	"bracketctl/internal/bracket"
	"bracketctl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusMessageTTL = 3 * time.Second

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses outside the quit shortcuts.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help, m.Keys.Cancel) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		LogInfo(controllerSubsystem, "Debug mode: %t", m.DebugMode)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Generate):
		cmd := m.StartGeneration()
		if cmd == nil {
			LogDebug(m, controllerSubsystem, "Generate ignored: request already in flight")
			return m, nil
		}
		LogInfo(controllerSubsystem, "Generating bracket at madness level %d", m.MadnessLevel)
		return m, cmd

	case key.Matches(keyMsg, m.Keys.Cancel):
		if m.CancelGeneration() {
			LogInfo(controllerSubsystem, "Bracket generation cancelled")
			return m, m.SetStatusMessage("Generation cancelled", model.StatusBarWarning, statusMessageTTL)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Decrease):
		m.SetMadnessLevel(m.MadnessLevel - 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Increase):
		m.SetMadnessLevel(m.MadnessLevel + 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		return copyBracket(m)

	case key.Matches(keyMsg, m.Keys.Up, m.Keys.Down, m.Keys.PageUp, m.Keys.PageDown):
		var cmd tea.Cmd
		m.BracketViewport, cmd = m.BracketViewport.Update(keyMsg)
		return m, cmd
	}

	if level, ok := digitLevel(keyMsg); ok {
		m.SetMadnessLevel(level)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog, m.Keys.Cancel):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageTTL)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageTTL)
	case key.Matches(keyMsg, m.Keys.Up, m.Keys.Down, m.Keys.PageUp, m.Keys.PageDown):
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func copyBracket(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Bracket == nil {
		return m, m.SetStatusMessage("No bracket to copy", model.StatusBarWarning, statusMessageTTL)
	}
	if err := clipboardWriteAll(bracket.Text(m.Bracket)); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy bracket")
		return m, m.SetStatusMessage("Copy bracket failed", model.StatusBarError, statusMessageTTL)
	}
	return m, m.SetStatusMessage("Bracket copied to clipboard", model.StatusBarSuccess, statusMessageTTL)
}

// digitLevel maps the keys 0-9 to a madness level.
func digitLevel(keyMsg tea.KeyMsg) (int, bool) {
	s := keyMsg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
