package statusbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	count      int
	lastClosed time.Time
	now        time.Time
	hints      string
	width      int
	styles     *styles.Styles
}

// New creates a new StatusBar for count live toasts. A zero lastClosed means
// nothing has closed yet.
func New(count int, lastClosed, now time.Time, hints string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		count:      count,
		lastClosed: lastClosed,
		now:        now,
		hints:      hints,
		width:      width,
		styles:     styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	info := fmt.Sprintf("%d %s", sb.count, plural(sb.count, "toast", "toasts"))
	if !sb.lastClosed.IsZero() {
		info += " · last closed " + humanize.RelTime(sb.lastClosed, sb.now, "ago", "from now")
	}
	content := sb.styles.StatusInfo.Render(info)

	if sb.hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, separator, sb.hints)
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
