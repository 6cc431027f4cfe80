package toast

import (
	"time"

	"github.com/riordanpawley/toaster/internal/dom"
	"github.com/riordanpawley/toaster/internal/schedule"
)

type state int

const (
	stateVisible state = iota
	stateHiding
	stateRemoved
)

func (s state) String() string {
	switch s {
	case stateVisible:
		return "visible"
	case stateHiding:
		return "hiding"
	default:
		return "removed"
	}
}

// entry tracks one toast element and the callbacks scheduled for it.
type entry struct {
	el    *dom.Element
	state state

	// manual is set once Hide has claimed the toast; later requests are
	// dropped.
	manual bool

	reveal  schedule.Handle
	hide    schedule.Handle
	removal schedule.Handle
}

func (e *entry) cancel() {
	for _, h := range []schedule.Handle{e.reveal, e.hide, e.removal} {
		if h != nil {
			h.Cancel()
		}
	}
	e.reveal, e.hide, e.removal = nil, nil, nil
}

// dismiss schedules the Visible -> Hiding -> Removed sequence for the current
// toast. ignoreCloseDelay skips the auto-close wait; immediate uses animation
// frames instead of timers.
func (m *Manager) dismiss(immediate, ignoreCloseDelay bool) {
	el := m.current
	if el == nil {
		m.logger.Error("cannot hide toast: no current toast element", "toasts", m.container.ChildCount())
		return
	}

	e, ok := m.entries[el]
	if !ok || e.state != stateVisible || e.manual {
		m.logger.Debug("dismiss already in progress", "state", stateOf(e))
		return
	}

	if ignoreCloseDelay {
		e.manual = true
		if e.hide != nil {
			e.hide.Cancel()
			e.hide = nil
		}
	}

	o := m.opts.clone()
	begin := func() { m.beginHiding(e, o, immediate) }

	if immediate {
		e.hide = m.sched.RequestAnimationFrame(begin)
		return
	}

	var delay time.Duration
	if !ignoreCloseDelay {
		delay = o.closeDelay()
	}
	e.hide = m.sched.AfterFunc(delay, begin)
}

func (m *Manager) beginHiding(e *entry, o Options, immediate bool) {
	if e.state != stateVisible || m.closed {
		return
	}
	e.state = stateHiding
	e.hide = nil
	if e.reveal != nil {
		e.reveal.Cancel()
		e.reveal = nil
	}

	invoke(o.BeforeCloseCallback, m)
	if m.closed {
		return
	}

	e.el.ClassList().Remove(o.ShowClass)
	e.el.ClassList().Add(o.HideClass)

	finish := func() { m.removeToast(e, o) }
	if immediate {
		e.removal = m.sched.RequestAnimationFrame(finish)
		return
	}
	e.removal = m.sched.AfterFunc(transitionDuration(m.doc.ComputedStyle(e.el)), finish)
}

func (m *Manager) removeToast(e *entry, o Options) {
	if e.state != stateHiding || m.closed {
		return
	}
	e.state = stateRemoved
	e.removal = nil

	e.el.Remove()
	delete(m.entries, e.el)
	if m.lastAdded == e.el {
		m.lastAdded = m.container.LastElementChild()
	}

	invoke(o.CloseCallback, m)
	if m.closed {
		return
	}

	m.current = m.container.LastElementChild()
	m.logger.Debug("toast removed", "toasts", m.Len())
}

// transitionDuration averages the comma separated transition-duration
// values of cs. Unparseable values are skipped; no values yields zero.
func transitionDuration(cs *dom.Style) time.Duration {
	times := dom.ParseTimes(cs.Get("transition-duration"))
	if len(times) == 0 {
		return 0
	}
	var total time.Duration
	for _, t := range times {
		total += t
	}
	return total / time.Duration(len(times))
}

func invoke(cb Callback, m *Manager) {
	if cb != nil {
		cb(m)
	}
}

func stateOf(e *entry) string {
	if e == nil {
		return "untracked"
	}
	return e.state.String()
}
