package schedule

import "time"

// Manual is a deterministic Scheduler driven by explicit Advance and Frame
// calls. It is meant for tests and for scripted, non-interactive rendering.
type Manual struct {
	now    time.Time
	seq    uint64
	timers []*manualTask
	frames []*manualTask
}

type manualTask struct {
	at   time.Time
	seq  uint64
	fn   func()
	done bool
}

func (t *manualTask) Cancel() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewManual returns a Manual clock starting at the Unix epoch.
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0).UTC()}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time { return m.now }

// AfterFunc schedules fn to run once the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTask{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// RequestAnimationFrame queues fn for the next Frame call.
func (m *Manual) RequestAnimationFrame(fn func()) Handle {
	m.seq++
	t := &manualTask{at: m.now, seq: m.seq, fn: fn}
	m.frames = append(m.frames, t)
	return t
}

// Advance moves the clock forward by d, running every timer that comes due in
// deadline order (ties in scheduling order). Timers scheduled by callbacks
// run in the same call when they fall inside the window.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now.Add(d)
	ran := 0
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		next.done = true
		ran++
		if next.fn != nil {
			next.fn()
		}
	}
	m.now = target
	m.timers = compact(m.timers)
	return ran
}

// Frame runs the animation-frame callbacks queued before the call. Callbacks
// requested while the frame runs wait for the next Frame.
func (m *Manual) Frame() int {
	batch := m.frames
	m.frames = nil
	ran := 0
	for _, t := range batch {
		if t.done {
			continue
		}
		t.done = true
		ran++
		if t.fn != nil {
			t.fn()
		}
	}
	return ran
}

// Pending returns the number of timers and frame callbacks still waiting.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	for _, t := range m.frames {
		if !t.done {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of queued frame callbacks.
func (m *Manual) PendingFrames() int {
	n := 0
	for _, t := range m.frames {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Time) *manualTask {
	var best *manualTask
	for _, t := range m.timers {
		if t.done || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func compact(tasks []*manualTask) []*manualTask {
	out := tasks[:0]
	for _, t := range tasks {
		if !t.done {
			out = append(out, t)
		}
	}
	return out
}
