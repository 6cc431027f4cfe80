// Package stack renders a toast container element as terminal text.
package stack

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/toast"
	"github.com/riordanpawley/toaster/internal/ui/styles"
)

// maxToastWidth caps the width of a single toast box.
const maxToastWidth = 40

// Renderer handles rendering of toast containers
type Renderer struct {
	styles *styles.Styles
	opts   toast.Options
	width  int
}

// New creates a Renderer. opts supplies the class names used to recognise
// toast parts and visibility.
func New(s *styles.Styles, opts toast.Options) *Renderer {
	return &Renderer{styles: s, opts: opts, width: 80}
}

// SetOptions updates the class names the renderer looks for.
func (r *Renderer) SetOptions(opts toast.Options) { r.opts = opts }

// Options returns the class names the renderer looks for.
func (r *Renderer) Options() toast.Options { return r.opts }

// SetWidth sets the terminal width used to size toast boxes.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// ToastWidth returns the width of one toast box, padding included.
func (r *Renderer) ToastWidth() int {
	w := r.width / 3
	if w > maxToastWidth {
		w = maxToastWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// Render renders the toasts in container in child order.
// Returns empty string if there are no toasts to display
func (r *Renderer) Render(container *dom.Element) string {
	if container == nil || container.ChildCount() == 0 {
		return ""
	}

	align := lipgloss.Left
	if container.ClassList().Contains(r.opts.ContainerClass + "--" + string(toast.PositionRight)) {
		align = lipgloss.Right
	}

	rendered := make([]string, 0, container.ChildCount())
	for _, el := range container.Children() {
		rendered = append(rendered, r.RenderToast(el))
	}
	return lipgloss.JoinVertical(align, rendered...)
}

// RenderToast renders one toast element as a bordered box.
func (r *Renderer) RenderToast(el *dom.Element) string {
	width := r.ToastWidth()
	inner := width - 2
	classes := el.ClassList()
	hidden := !classes.Contains(r.opts.ShowClass) || classes.Contains(r.opts.HideClass)
	style := r.styles.ForClasses(r.opts.ToastClass, classes.Values(), hidden)

	var lines []string
	for _, child := range el.Children() {
		text := strings.TrimSpace(child.TextContent())
		if text == "" {
			continue
		}
		if child.ClassList().Contains(r.opts.TitleClass) {
			lines = append(lines, r.styles.ToastTitle.Render(ansi.Truncate(text, inner, "…")))
			continue
		}
		lines = append(lines, r.styles.ToastContent.Render(text))
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// Measure reports the rendered height of a toast element in rows. It is
// meant to be installed with dom.WithMeasurer.
func (r *Renderer) Measure(el *dom.Element) (float64, bool) {
	if el == nil || !el.ClassList().Contains(r.opts.ToastClass) {
		return 0, false
	}
	return float64(lipgloss.Height(r.RenderToast(el))), true
}

// Place positions a rendered stack inside a width x height area according to
// the container's position and direction classes.
func (r *Renderer) Place(view string, container *dom.Element, width, height int) string {
	if width <= 0 || height <= 0 {
		return view
	}
	h, v := lipgloss.Left, lipgloss.Bottom
	if container != nil {
		classes := container.ClassList()
		if classes.Contains(r.opts.ContainerClass + "--" + string(toast.PositionRight)) {
			h = lipgloss.Right
		}
		if classes.Contains(r.opts.ContainerClass + "--" + string(toast.DirectionFromTop)) {
			v = lipgloss.Top
		}
	}
	return lipgloss.Place(width, height, h, v, view)
}
