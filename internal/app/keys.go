package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toaster/internal/dom"
)

type keyMap struct {
	Show       key.Binding
	Dismiss    key.Binding
	DismissNow key.Binding
	Quit       key.Binding
}

func newKeyMap(shortcut string, shortcutEnabled bool) keyMap {
	dismiss := key.NewBinding(
		key.WithKeys("ctrl+"+shortcut),
		key.WithHelp("ctrl+"+shortcut, "dismiss"),
	)
	dismiss.SetEnabled(shortcutEnabled && shortcut != "")

	return keyMap{
		Show: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new toast"),
		),
		Dismiss: dismiss,
		DismissNow: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "dismiss now"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Show, k.Dismiss, k.DismissNow, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// keyEvent translates a bubbletea key press into a key-down event.
func keyEvent(msg tea.KeyMsg) dom.KeyboardEvent {
	s := msg.String()
	var ev dom.KeyboardEvent
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			ev.Ctrl = true
			s = strings.TrimPrefix(s, "ctrl+")
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			ev.Alt = true
			s = strings.TrimPrefix(s, "alt+")
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			ev.Shift = true
			s = strings.TrimPrefix(s, "shift+")
		default:
			ev.Key = keyName(s)
			return ev
		}
	}
}

func keyName(s string) string {
	switch s {
	case "enter":
		return "Enter"
	case "esc":
		return "Escape"
	case "tab":
		return "Tab"
	case "backspace":
		return "Backspace"
	case "up":
		return "ArrowUp"
	case "down":
		return "ArrowDown"
	case "left":
		return "ArrowLeft"
	case "right":
		return "ArrowRight"
	case " ", "space":
		return " "
	}
	return s
}
