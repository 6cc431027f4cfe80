package toast

import (
	"fmt"
	"math"
	"time"
)

// Position places the container on the left or right edge.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// Direction is the edge new toasts enter from.
type Direction string

const (
	DirectionFromBottom Direction = "from-bottom"
	DirectionFromTop    Direction = "from-top"
)

// RevealDelay is the wait between inserting a toast and adding the show
// class. The auto-close delay is padded by the same amount.
const RevealDelay = 5 * time.Millisecond

// MaxCloseAfterSeconds is the longest auto-close delay a time.Duration can
// hold.
const MaxCloseAfterSeconds = float64(math.MaxInt64 / int64(time.Second))

// Callback receives the manager whose toast is closing.
type Callback func(m *Manager)

// Options configure a Manager. A Manager owns one Options value; every
// Option passed to New or Show is applied onto it and stays applied for
// later calls.
type Options struct {
	ContainerClass string
	ContainerID    string
	ToastClass     string
	Position       Position
	Direction      Direction
	TitleClass     string
	ContentClass   string

	Title string
	// Content is inserted as markup without escaping. Callers must sanitize
	// untrusted input.
	Content       string
	CustomClasses []string

	ShowClass string
	HideClass string

	CloseAfterSeconds float64
	IsAutoClose       bool

	BeforeCloseCallback Callback
	CloseCallback       Callback

	UseKeyboardShortcutToClose bool
	// KeyboardShortcutKey is pressed together with Ctrl.
	KeyboardShortcutKey string
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		ContainerClass:             "c-toasts-container",
		ContainerID:                "toastsContainer",
		ToastClass:                 "c-toast",
		Position:                   PositionLeft,
		Direction:                  DirectionFromBottom,
		TitleClass:                 "c-toast__title",
		ContentClass:               "c-toast__content",
		ShowClass:                  "c-toast--visible",
		HideClass:                  "c-toast--hidden",
		CloseAfterSeconds:          10,
		IsAutoClose:                true,
		UseKeyboardShortcutToClose: true,
		KeyboardShortcutKey:        "x",
	}
}

// Option overrides one or more fields of Options.
type Option func(*Options)

// WithOptions replaces every field with o.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o.clone() }
}

func WithContainerClass(class string) Option {
	return func(o *Options) { o.ContainerClass = class }
}

func WithContainerID(id string) Option {
	return func(o *Options) { o.ContainerID = id }
}

func WithToastClass(class string) Option {
	return func(o *Options) { o.ToastClass = class }
}

func WithPosition(p Position) Option {
	return func(o *Options) { o.Position = p }
}

func WithDirection(d Direction) Option {
	return func(o *Options) { o.Direction = d }
}

func WithTitleClass(class string) Option {
	return func(o *Options) { o.TitleClass = class }
}

func WithContentClass(class string) Option {
	return func(o *Options) { o.ContentClass = class }
}

func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithContent sets the toast body markup. It is not escaped.
func WithContent(markup string) Option {
	return func(o *Options) { o.Content = markup }
}

// WithCustomClasses replaces the extra classes added to each toast.
func WithCustomClasses(classes ...string) Option {
	return func(o *Options) { o.CustomClasses = append([]string(nil), classes...) }
}

func WithShowClass(class string) Option {
	return func(o *Options) { o.ShowClass = class }
}

func WithHideClass(class string) Option {
	return func(o *Options) { o.HideClass = class }
}

func WithCloseAfter(seconds float64) Option {
	return func(o *Options) { o.CloseAfterSeconds = seconds }
}

func WithAutoClose(enabled bool) Option {
	return func(o *Options) { o.IsAutoClose = enabled }
}

func WithBeforeClose(cb Callback) Option {
	return func(o *Options) { o.BeforeCloseCallback = cb }
}

func WithOnClose(cb Callback) Option {
	return func(o *Options) { o.CloseCallback = cb }
}

func WithKeyboardShortcut(enabled bool) Option {
	return func(o *Options) { o.UseKeyboardShortcutToClose = enabled }
}

func WithKeyboardShortcutKey(key string) Option {
	return func(o *Options) { o.KeyboardShortcutKey = key }
}

// apply returns a copy of o with opts applied in order.
func (o Options) apply(opts []Option) Options {
	out := o.clone()
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}

func (o Options) clone() Options {
	o.CustomClasses = append([]string(nil), o.CustomClasses...)
	return o
}

// closeDelay is the auto-close wait: CloseAfterSeconds plus the reveal delay.
func (o Options) closeDelay() time.Duration {
	return time.Duration(o.CloseAfterSeconds*float64(time.Second)) + RevealDelay
}

// Validate reports the first field that would leave the manager unable to
// place toasts.
func (o Options) Validate() error {
	switch {
	case o.ContainerID == "":
		return &OptionError{Field: "ContainerID", Reason: "must not be empty"}
	case o.ToastClass == "":
		return &OptionError{Field: "ToastClass", Reason: "must not be empty"}
	case o.Direction != DirectionFromBottom && o.Direction != DirectionFromTop:
		return &OptionError{Field: "Direction", Reason: fmt.Sprintf("unknown direction %q", o.Direction)}
	case o.Position != "" && o.Position != PositionLeft && o.Position != PositionRight:
		return &OptionError{Field: "Position", Reason: fmt.Sprintf("unknown position %q", o.Position)}
	case math.IsNaN(o.CloseAfterSeconds):
		return &OptionError{Field: "CloseAfterSeconds", Reason: "must be a number"}
	case o.CloseAfterSeconds < 0:
		return &OptionError{Field: "CloseAfterSeconds", Reason: "must not be negative"}
	case o.CloseAfterSeconds > MaxCloseAfterSeconds:
		return &OptionError{Field: "CloseAfterSeconds", Reason: fmt.Sprintf("must not exceed %.0f", MaxCloseAfterSeconds)}
	}
	return nil
}
