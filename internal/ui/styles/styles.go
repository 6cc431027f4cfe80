package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Toasts
	Toast        lipgloss.Style
	ToastHidden  lipgloss.Style
	ToastTitle   lipgloss.Style
	ToastContent lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusInfo lipgloss.Style
	StatusHint lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// New creates a new Styles instance with default styling
func New() *Styles {
	return &Styles{
		Toast: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Foreground(Text).
			Padding(0, 1),

		ToastHidden: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Foreground(Overlay0).
			Faint(true).
			Padding(0, 1),

		ToastTitle: lipgloss.NewStyle().
			Bold(true),

		ToastContent: lipgloss.NewStyle(),

		StatusBar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Teal),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		HelpKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Overlay1),
	}
}

// ForClasses returns the toast style for a class list. The first class of the
// form <toastClass>--<modifier> with a known modifier sets the accent color;
// hidden toasts use ToastHidden regardless of modifiers.
func (s *Styles) ForClasses(toastClass string, classes []string, hidden bool) lipgloss.Style {
	if hidden {
		return s.ToastHidden
	}
	style := s.Toast
	prefix := toastClass + "--"
	for _, c := range classes {
		if !strings.HasPrefix(c, prefix) {
			continue
		}
		if color, ok := ModifierColors[strings.TrimPrefix(c, prefix)]; ok {
			return style.BorderForeground(color).Foreground(color)
		}
	}
	return style
}
