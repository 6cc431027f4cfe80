package schedule

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrLoopStopped is returned by Next after Stop.
var ErrLoopStopped = errors.New("schedule: loop stopped")

// Loop is a real-time Scheduler for a single UI goroutine. Timers expire on
// runtime goroutines but only enqueue their callback; the owner receives it
// from Next and runs it. Frame callbacks run when the owner calls RunFrame.
type Loop struct {
	clock   clockwork.Clock
	mu      sync.Mutex
	ready   chan *loopTask
	timers  map[*loopTask]clockwork.Timer
	frames  []*loopTask
	stopped chan struct{}
	once    sync.Once
}

type loopTask struct {
	fn        func()
	cancelled atomic.Bool
	loop      *Loop
}

func (t *loopTask) Cancel() bool {
	if !t.cancelled.CompareAndSwap(false, true) {
		return false
	}
	t.loop.mu.Lock()
	if timer, ok := t.loop.timers[t]; ok {
		timer.Stop()
		delete(t.loop.timers, t)
	}
	t.loop.mu.Unlock()
	return true
}

// Run invokes the callback unless it was cancelled.
func (t *loopTask) Run() {
	if t.cancelled.CompareAndSwap(false, true) && t.fn != nil {
		t.fn()
	}
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithClock sets the clock timers run on. The default is the wall clock.
func WithClock(c clockwork.Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

// NewLoop returns a running Loop.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		clock:   clockwork.NewRealClock(),
		ready:   make(chan *loopTask, 64),
		timers:  make(map[*loopTask]clockwork.Timer),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AfterFunc schedules fn to be handed to Next after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	t := &loopTask{fn: fn, loop: l}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timers[t] = l.clock.AfterFunc(d, func() {
		l.mu.Lock()
		delete(l.timers, t)
		l.mu.Unlock()
		select {
		case l.ready <- t:
		case <-l.stopped:
		}
	})
	return t
}

// RequestAnimationFrame queues fn for the next RunFrame.
func (l *Loop) RequestAnimationFrame(fn func()) Handle {
	t := &loopTask{fn: fn, loop: l}
	l.mu.Lock()
	l.frames = append(l.frames, t)
	l.mu.Unlock()
	return t
}

// Next blocks until a timer callback is due and returns it. The caller must
// invoke the returned function on the UI goroutine.
func (l *Loop) Next(ctx context.Context) (func(), error) {
	select {
	case t := <-l.ready:
		return t.Run, nil
	case <-l.stopped:
		return nil, ErrLoopStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunFrame runs the frame callbacks queued before the call and returns how
// many ran.
func (l *Loop) RunFrame() int {
	l.mu.Lock()
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	ran := 0
	for _, t := range batch {
		if t.cancelled.Load() {
			continue
		}
		t.Run()
		ran++
	}
	return ran
}

// Stop cancels all pending timers and unblocks Next.
func (l *Loop) Stop() {
	l.once.Do(func() {
		l.mu.Lock()
		for t, timer := range l.timers {
			timer.Stop()
			t.cancelled.Store(true)
		}
		l.timers = make(map[*loopTask]clockwork.Timer)
		l.frames = nil
		l.mu.Unlock()
		close(l.stopped)
	})
}
