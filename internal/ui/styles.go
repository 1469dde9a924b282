package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"steplog/pkg/steplog"
)

// Styles colors steplog lines by kind. It implements steplog.Styler.
type Styles struct {
	Start   lipgloss.Style
	Done    lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles uses the default renderer, which drops colors when stdout
// is not a terminal.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles builds the palette styles on renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Start:   base.Foreground(Vitesse.Blue),
		Done:    base.Foreground(Vitesse.Primary).Bold(true),
		Message: base.Foreground(Vitesse.Text),
		Error:   base.Foreground(Vitesse.Red),
	}
}

// Style renders line with the style for kind. Each embedded line is
// rendered on its own so lipgloss does not pad them to a common width.
func (s Styles) Style(kind steplog.LineKind, line string) string {
	st := s.Message
	switch kind {
	case steplog.KindStart:
		st = s.Start
	case steplog.KindDone:
		st = s.Done
	case steplog.KindError:
		st = s.Error
	}
	parts := strings.Split(line, "\n")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = st.Render(p)
	}
	return strings.Join(parts, "\n")
}
