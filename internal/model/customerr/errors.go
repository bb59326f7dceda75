package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnrecognized means no classification rule matched the message.
var ErrUnrecognized = errors.New("message not recognized")

// ValidationError is reported back to the user together with Hint.
type ValidationError struct {
	Err  string
	Hint string
}

func (e *ValidationError) Error() string {
	return e.Err
}

// PersistenceReadError is recovered by the store as an empty collection.
type PersistenceReadError struct {
	Collection string
	Err        error
}

func (e *PersistenceReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Collection, e.Err)
}

func (e *PersistenceReadError) Unwrap() error {
	return e.Err
}

// DispatchError is a failed push to one recipient.
type DispatchError struct {
	UserID string
	Err    error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to %s: %v", e.UserID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
