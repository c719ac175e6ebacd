package model

import (
	"bracketctl/internal/bracket"
	"bracketctl/pkg/logging"
)

// BracketResultMsg carries the outcome of one generation request.
type BracketResultMsg struct {
	Generation uint64
	Madness    int
	Result     *bracket.Result
	Err        error
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears a transient status bar message.
type ClearStatusBarMsg struct{}
