package dom

// EventKeyDown is the key-down event type.
const EventKeyDown = "keydown"

// KeyboardEvent carries the key and modifier state of a key press.
type KeyboardEvent struct {
	Type  string
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Listener is a registered event handler. Remove releases it.
type Listener struct {
	doc     *Document
	typ     string
	fn      func(KeyboardEvent)
	capture bool
}

// Remove unregisters the listener. It is safe to call more than once.
func (l *Listener) Remove() {
	if l == nil || l.doc == nil {
		return
	}
	d := l.doc
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
	l.doc = nil
}

// AddEventListener registers fn for events of typ on the body.
func (d *Document) AddEventListener(typ string, fn func(KeyboardEvent), capture bool) *Listener {
	l := &Listener{doc: d, typ: typ, fn: fn, capture: capture}
	d.listeners = append(d.listeners, l)
	return l
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int { return len(d.listeners) }

// DispatchKeyDown delivers a key-down event to the body: capturing listeners
// first, then bubbling ones, each group in registration order.
func (d *Document) DispatchKeyDown(ev KeyboardEvent) {
	ev.Type = EventKeyDown
	snapshot := make([]*Listener, len(d.listeners))
	copy(snapshot, d.listeners)

	for _, phase := range []bool{true, false} {
		for _, l := range snapshot {
			if l.capture != phase || l.typ != ev.Type || l.doc == nil || l.fn == nil {
				continue
			}
			l.fn(ev)
		}
	}
}
