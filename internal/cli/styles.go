package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	cyaserrors "github.com/cyascript/cyascript/internal/errors"
)

// Color palette
var (
	ColorDebug = lipgloss.Color("#94A3B8") // Gray
	ColorInfo  = lipgloss.Color("#06B6D4") // Cyan
	ColorWarn  = lipgloss.Color("#F59E0B") // Amber
	ColorError = lipgloss.Color("#EF4444") // Red
	ColorMuted = lipgloss.Color("#6B7280")
)

type renderFunc func(...string) string

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// Styles renders level tags and diagnostics. A zero-color Styles renders
// text unchanged.
type Styles struct {
	Debug renderFunc
	Info  renderFunc
	Warn  renderFunc
	Error renderFunc
	Muted renderFunc
}

// NewStyles returns styles bound to w. With color off every style is plain.
func NewStyles(w io.Writer, color bool) *Styles {
	if !color {
		return &Styles{Debug: plain, Info: plain, Warn: plain, Error: plain, Muted: plain}
	}
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Debug: r.NewStyle().Foreground(ColorDebug).Render,
		Info:  r.NewStyle().Foreground(ColorInfo).Bold(true).Render,
		Warn:  r.NewStyle().Foreground(ColorWarn).Bold(true).Render,
		Error: r.NewStyle().Foreground(ColorError).Bold(true).Render,
		Muted: r.NewStyle().Foreground(ColorMuted).Italic(true).Render,
	}
}

// RenderError formats err for display on w. Categorized errors carry their
// category after the label.
func RenderError(w io.Writer, err error) string {
	s := NewStyles(w, IsTerminal(w))
	label := "Error:"
	if category, ok := cyaserrors.CategoryOf(err); ok {
		label = "Error[" + string(category) + "]:"
	}
	return s.Error(label) + " " + err.Error()
}
