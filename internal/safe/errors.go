package safe

import (
	"errors"
	"fmt"

	"safeget/internal/engine"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("component not found")
	// ErrInvalidArgument reports a violated precondition, such as a
	// destroyed source object.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError is returned by the failing lookups when no live component
// matches.
type NotFoundError struct {
	// Source names the object the failure is attributed to. It is the
	// search root unless AttributedTo was given.
	Source  string
	Type    string
	Scope   engine.Scope
	Message string
}

func (e *NotFoundError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "failed to find " + e.Type
		if e.Scope != engine.ScopeSelf {
			msg += " in " + e.Scope.String()
		}
	}
	if e.Source == "" {
		return msg
	}
	return "@" + e.Source + ": " + msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func invalidSource(src engine.Object) error {
	if src == nil {
		return fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	}
	return fmt.Errorf("%w: source %T is nil or destroyed", ErrInvalidArgument, src)
}
