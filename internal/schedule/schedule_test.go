package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_AdvanceRunsInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })

	assert.Equal(t, 0, m.Advance(9*time.Millisecond))
	assert.Equal(t, 3, m.Advance(11*time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, time.Unix(0, 0).UTC().Add(20*time.Millisecond), m.Now())
}

func TestManual_NestedTimersInsideWindow(t *testing.T) {
	m := NewManual()
	var at []time.Duration
	start := m.Now()

	m.AfterFunc(5*time.Millisecond, func() {
		at = append(at, m.Now().Sub(start))
		m.AfterFunc(0, func() { at = append(at, m.Now().Sub(start)) })
		m.AfterFunc(100*time.Millisecond, func() { at = append(at, m.Now().Sub(start)) })
	})

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 5 * time.Millisecond}, at)
	assert.Equal(t, 1, m.Pending())

	m.Advance(55 * time.Millisecond)
	assert.Equal(t, 105*time.Millisecond, at[2])
}

func TestManual_Cancel(t *testing.T) {
	m := NewManual()
	ran := false
	h := m.AfterFunc(time.Millisecond, func() { ran = true })

	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel())
	m.Advance(time.Second)
	assert.False(t, ran)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_FrameDefersNestedRequests(t *testing.T) {
	m := NewManual()
	var order []int

	m.RequestAnimationFrame(func() {
		order = append(order, 1)
		m.RequestAnimationFrame(func() { order = append(order, 2) })
	})

	assert.Equal(t, 1, m.Frame())
	assert.Equal(t, []int{1}, order)
	assert.Equal(t, 1, m.PendingFrames())

	assert.Equal(t, 1, m.Frame())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 0, m.Frame())
}

func TestLoop_NextDeliversTimer(t *testing.T) {
	l := NewLoop()
	defer l.Stop()

	ran := make(chan struct{}, 1)
	l.AfterFunc(time.Millisecond, func() { ran <- struct{}{} })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fn, err := l.Next(ctx)
	require.NoError(t, err)

	select {
	case <-ran:
		t.Fatal("callback must not run before the owner invokes it")
	default:
	}

	fn()
	select {
	case <-ran:
	default:
		t.Fatal("callback did not run")
	}
}

func TestLoop_FakeClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewLoop(WithClock(clock))
	defer l.Stop()

	var order []string
	l.AfterFunc(time.Second, func() { order = append(order, "late") })
	l.AfterFunc(500*time.Millisecond, func() { order = append(order, "early") })
	cancelled := l.AfterFunc(700*time.Millisecond, func() { order = append(order, "cancelled") })
	assert.True(t, cancelled.Cancel())

	next := func(timeout time.Duration) (func(), error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return l.Next(ctx)
	}

	clock.Advance(499 * time.Millisecond)
	_, err := next(20 * time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "nothing is due yet")

	clock.Advance(time.Millisecond)
	fn, err := next(2 * time.Second)
	require.NoError(t, err)
	fn()
	assert.Equal(t, []string{"early"}, order)

	clock.Advance(500 * time.Millisecond)
	fn, err = next(2 * time.Second)
	require.NoError(t, err)
	fn()
	assert.Equal(t, []string{"early", "late"}, order)

	_, err = next(20 * time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "the cancelled timer never fires")
}

func TestLoop_CancelledTimerDoesNotRun(t *testing.T) {
	l := NewLoop()
	defer l.Stop()

	ran := false
	h := l.AfterFunc(time.Hour, func() { ran = true })
	assert.True(t, h.Cancel())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := l.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, ran)
}

func TestLoop_RunFrame(t *testing.T) {
	l := NewLoop()
	defer l.Stop()

	count := 0
	l.RequestAnimationFrame(func() { count++ })
	h := l.RequestAnimationFrame(func() { count += 10 })
	h.Cancel()

	assert.Equal(t, 1, l.RunFrame())
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, l.RunFrame())
}

func TestLoop_StopUnblocksNext(t *testing.T) {
	l := NewLoop()
	l.AfterFunc(time.Hour, func() {})
	l.Stop()
	l.Stop()

	_, err := l.Next(context.Background())
	assert.ErrorIs(t, err, ErrLoopStopped)
}
