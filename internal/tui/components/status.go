package components

import (
	"bracketctl/internal/tui/design"
	"bracketctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// PhaseIndicator renders the request phase as an icon and a word.
type PhaseIndicator struct {
	Phase    model.Phase
	ShowIcon bool
}

// NewPhaseIndicator creates an indicator for phase.
func NewPhaseIndicator(phase model.Phase) *PhaseIndicator {
	return &PhaseIndicator{Phase: phase, ShowIcon: true}
}

// TextOnly hides the icon.
func (p *PhaseIndicator) TextOnly() *PhaseIndicator {
	p.ShowIcon = false
	return p
}

// Render returns the styled indicator
func (p *PhaseIndicator) Render() string {
	text := p.Phase.String()
	if p.ShowIcon {
		text = design.IconText(p.icon(), text)
	}
	return p.style().Render(text)
}

func (p *PhaseIndicator) icon() string {
	switch p.Phase {
	case model.PhaseLoading:
		return design.IconHourglass
	case model.PhaseReady:
		return design.IconCheck
	case model.PhaseFailed:
		return design.IconCross
	default:
		return design.IconCircle
	}
}

func (p *PhaseIndicator) style() lipgloss.Style {
	switch p.Phase {
	case model.PhaseLoading:
		return design.TextInfoStyle
	case model.PhaseReady:
		return design.TextSuccessStyle
	case model.PhaseFailed:
		return design.TextErrorStyle
	default:
		return design.TextSecondaryStyle
	}
}
