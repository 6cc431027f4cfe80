package toast

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNilDocument        = errors.New("toast: nil document")
	ErrNilScheduler       = errors.New("toast: nil scheduler")
	ErrDuplicateContainer = errors.New("toast: container id already in use")
	ErrInvalidOptions     = errors.New("toast: invalid options")
)

// OptionError describes a rejected option value.
type OptionError struct {
	Field  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("toast: option %s %s", e.Field, e.Reason)
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOptions
}
