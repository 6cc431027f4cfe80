// Package toast manages a container of transient notification elements:
// creating them, stacking them without overlap, revealing them, and running
// their dismiss sequence on a timer, on request, or on a keyboard shortcut.
package toast

import (
	"fmt"
	"log/slog"

	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/schedule"
)

// Manager owns one toast container inside a document. It is not safe for
// concurrent use; call it from the goroutine that runs its scheduler.
type Manager struct {
	doc    *dom.Document
	sched  schedule.Scheduler
	logger *slog.Logger

	opts      Options
	container *dom.Element
	current   *dom.Element
	lastAdded *dom.Element
	entries   map[*dom.Element]*entry
	listener  *dom.Listener
	closed    bool
}

// New creates the container described by opts and appends it to the
// document body. The container id must not already be present in doc.
func New(doc *dom.Document, sched schedule.Scheduler, logger *slog.Logger, opts ...Option) (*Manager, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if logger == nil {
		logger = slog.Default()
	}

	o := DefaultOptions().apply(opts)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if doc.GetElementByID(o.ContainerID) != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateContainer, o.ContainerID)
	}

	container := doc.CreateElement("div")
	container.SetID(o.ContainerID)
	container.ClassList().Add(containerClasses(o)...)
	doc.Body().AppendChild(container)

	m := &Manager{
		doc:       doc,
		sched:     sched,
		logger:    logger.With("container", o.ContainerID),
		opts:      o,
		container: container,
		entries:   make(map[*dom.Element]*entry),
	}

	if o.UseKeyboardShortcutToClose {
		m.listener = doc.AddEventListener(dom.EventKeyDown, m.onKeyDown, true)
	}

	return m, nil
}

func containerClasses(o Options) []string {
	if o.ContainerClass == "" {
		return nil
	}
	classes := []string{o.ContainerClass}
	if o.Position != "" {
		classes = append(classes, o.ContainerClass+"--"+string(o.Position))
	}
	if o.Direction != "" {
		classes = append(classes, o.ContainerClass+"--"+string(o.Direction))
	}
	return classes
}

// Options returns a copy of the manager's current options.
func (m *Manager) Options() Options { return m.opts.clone() }

// Container returns the container element.
func (m *Manager) Container() *dom.Element { return m.container }

// CurrentElement returns the toast that Hide and the keyboard shortcut act
// on, or nil.
func (m *Manager) CurrentElement() *dom.Element { return m.current }

// Len returns the number of toasts in the container.
func (m *Manager) Len() int { return m.container.ChildCount() }

// Show adds one toast. opts are merged into the manager's options and remain
// in effect for later calls. Calling Show on a nil Manager does nothing.
func (m *Manager) Show(opts ...Option) {
	if m == nil {
		return
	}
	if m.closed {
		m.logger.Warn("show on closed toast manager")
		return
	}

	next := m.opts.apply(opts)
	if err := next.Validate(); err != nil {
		m.logger.Warn("ignoring invalid toast options", "error", err)
		next = m.opts
	}
	m.opts = next
	o := m.opts.clone()

	title := m.doc.CreateElement("h4")
	title.SetTextContent(o.Title)
	title.ClassList().Add(o.TitleClass)

	content := m.doc.CreateElement("div")
	content.SetInnerHTML(o.Content)
	content.ClassList().Add(o.ContentClass)

	el := m.doc.CreateElement("div")
	el.ClassList().Add(o.ToastClass)
	el.ClassList().Add(o.CustomClasses...)
	el.AppendChild(title)
	el.AppendChild(content)
	el.SetAttribute("role", "alert")
	el.SetAttribute("aria-live", "assertive")
	el.SetAttribute("aria-atomic", "true")

	e := &entry{el: el}
	m.entries[el] = e
	m.current = el

	m.restack(o.Direction)

	if o.IsAutoClose {
		m.dismiss(false, false)
	}

	if o.Direction == DirectionFromTop {
		m.container.InsertBefore(el, m.container.FirstElementChild())
	} else {
		m.container.AppendChild(el)
	}
	m.lastAdded = el

	e.reveal = m.sched.AfterFunc(RevealDelay, func() {
		e.reveal = nil
		if e.state == stateVisible {
			el.ClassList().Add(o.ShowClass)
		}
	})

	m.logger.Debug("toast shown", "title", o.Title, "toasts", m.Len())
}

// Hide dismisses the current toast without waiting for the auto-close delay.
// With immediately set the toast is hidden on the next animation frame and
// removed on the one after; otherwise removal waits for the toast's CSS
// transition.
func (m *Manager) Hide(immediately bool) {
	if m == nil {
		return
	}
	if m.closed {
		m.logger.Warn("hide on closed toast manager")
		return
	}
	m.dismiss(immediately, true)
}

// Close unregisters the keyboard listener, cancels pending timers and
// detaches the container. It is safe to call more than once.
func (m *Manager) Close() error {
	if m == nil || m.closed {
		return nil
	}
	m.closed = true

	if m.listener != nil {
		m.listener.Remove()
		m.listener = nil
	}
	for _, e := range m.entries {
		e.cancel()
	}
	m.entries = make(map[*dom.Element]*entry)
	m.container.Remove()
	m.current = nil
	m.lastAdded = nil
	return nil
}

func (m *Manager) onKeyDown(ev dom.KeyboardEvent) {
	if !m.opts.UseKeyboardShortcutToClose {
		return
	}
	if ev.Ctrl && ev.Key == m.opts.KeyboardShortcutKey {
		m.Hide(false)
	}
}

// restack offsets every toast already in the container by one step so the
// next insertion does not overlap them. The step is the last added toast's
// height plus twice its bottom margin.
func (m *Manager) restack(dir Direction) {
	if m.lastAdded == nil {
		return
	}
	cs := m.doc.ComputedStyle(m.lastAdded)
	height, _ := dom.ParseFloat(cs.Get("height"))
	margin, _ := dom.ParseFloat(cs.Get("margin-bottom"))
	step := height + margin*2

	children := m.container.Children()
	if dir == DirectionFromBottom {
		for i, j := len(children)-1, 1; i >= 0; i, j = i-1, j+1 {
			children[i].Style().Set("bottom", dom.FormatPx(step*float64(j)))
		}
		return
	}
	for i, child := range children {
		child.Style().Set("top", dom.FormatPx(step*float64(i+1)))
	}
}
