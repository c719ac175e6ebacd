package model

import (
	"context"
	"time"

	"bracketctl/internal/bracket"
	"bracketctl/internal/client"
	"bracketctl/internal/config"
	"bracketctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Phase is the request state of the bracket view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

// String provides a human-readable representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Generating"
	case PhaseReady:
		return "Ready"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	LoadingText         = "Generating bracket..."
)

// Fetcher retrieves a freshly generated bracket for a madness level.
// *client.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, madness int) (*bracket.Result, error)
}

var _ Fetcher = (*client.Client)(nil)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Generate    key.Binding
	Cancel      key.Binding
	Decrease    key.Binding
	Increase    key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Copy        key.Binding
	Help        key.Binding
	ToggleLog   key.Binding
	ToggleDebug key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Decrease, k.Increase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Cancel, k.Decrease, k.Increase},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Copy, k.ToggleLog, k.ToggleDebug, k.Help, k.Quit},
	}
}

// Model is the state of the bracket view.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// Bracket view state
	Bracket      *bracket.Result
	Loading      bool
	Error        string
	MadnessLevel int

	// Request plumbing. RequestGeneration increases with every generate and
	// cancel; results tagged with an older generation are discarded.
	Fetcher           Fetcher
	RequestGeneration uint64
	cancelRequest     context.CancelFunc

	// UI State & Output
	Spinner              spinner.Model
	Slider               progress.Model
	BracketViewport      viewport.Model
	BracketDirty         bool
	BracketViewportWidth int
	LogViewport          viewport.Model
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// Phase reports where the view is in the Idle → Loading → Ready/Failed cycle.
func (m *Model) Phase() Phase {
	switch {
	case m.Loading:
		return PhaseLoading
	case m.Error != "":
		return PhaseFailed
	case m.Bracket != nil:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// SetMadnessLevel stores a new madness level clamped to the slider range.
// It never issues a request.
func (m *Model) SetMadnessLevel(level int) {
	if level < config.MinMadness {
		level = config.MinMadness
	}
	if level > config.MaxMadness {
		level = config.MaxMadness
	}
	m.MadnessLevel = level
}

// CanGenerate reports whether the generate trigger is enabled.
func (m *Model) CanGenerate() bool {
	return !m.Loading
}

// StartGeneration moves the view into the loading state and returns the
// command performing the request. It returns nil while a request is in flight.
func (m *Model) StartGeneration() tea.Cmd {
	if !m.CanGenerate() {
		return nil
	}

	m.Bracket = nil
	m.Error = ""
	m.Loading = true
	m.BracketDirty = true
	m.RequestGeneration++

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelRequest = cancel

	return FetchBracketCmd(ctx, m.Fetcher, m.RequestGeneration, m.MadnessLevel)
}

// CancelGeneration abandons the in-flight request and returns to idle.
// It reports whether there was anything to cancel.
func (m *Model) CancelGeneration() bool {
	if !m.Loading {
		return false
	}
	m.releaseRequest()
	m.RequestGeneration++
	m.Loading = false
	m.Bracket = nil
	m.Error = ""
	m.BracketDirty = true
	return true
}

// ApplyResult stores the outcome of a generation request. Results from a
// superseded request are ignored and ApplyResult returns false.
func (m *Model) ApplyResult(msg BracketResultMsg) bool {
	if msg.Generation != m.RequestGeneration {
		return false
	}
	m.releaseRequest()
	m.Loading = false
	m.BracketDirty = true

	if msg.Err != nil {
		m.Bracket = nil
		m.Error = client.UserMessage(msg.Err)
		return true
	}
	m.Bracket = msg.Result
	m.Error = ""
	return true
}

// Shutdown cancels any in-flight request.
func (m *Model) Shutdown() {
	m.releaseRequest()
}

func (m *Model) releaseRequest() {
	if m.cancelRequest != nil {
		m.cancelRequest()
		m.cancelRequest = nil
	}
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
