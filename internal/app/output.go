package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bracketctl/internal/bracket"

	"github.com/charmbracelet/glamour"
)

// OutputFormat selects how the generate command prints a bracket.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// markdownWrap matches the width the markdown renderer wraps at.
const markdownWrap = 80

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON, OutputMarkdown:
		return f, nil
	case "md":
		return OutputMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or markdown)", s)
	}
}

// WriteResult prints r to w in the requested format.
func WriteResult(w io.Writer, r *bracket.Result, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputMarkdown:
		out, err := renderMarkdown(bracket.Markdown(r))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	case OutputText, "":
		_, err := io.WriteString(w, bracket.Text(r))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderMarkdown(doc string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(doc)
}
