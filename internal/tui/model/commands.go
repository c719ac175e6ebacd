package model

import (
	"context"
	"errors"

	"bracketctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoFetcher = errors.New("no bracket service configured")

// FetchBracketCmd performs one generation request and reports it as a BracketResultMsg.
func FetchBracketCmd(ctx context.Context, f Fetcher, generation uint64, madness int) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return BracketResultMsg{Generation: generation, Madness: madness, Err: errNoFetcher}
		}
		result, err := f.Fetch(ctx, madness)
		return BracketResultMsg{
			Generation: generation,
			Madness:    madness,
			Result:     result,
			Err:        err,
		}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
