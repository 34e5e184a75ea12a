package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTransition is wrapped when the current state has no transition for the event.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrRejected is wrapped when every candidate transition was vetoed by a guard.
	ErrRejected = errors.New("statemachine: transition rejected")
)

// TransitionError reports a fired event that did not change the state.
type TransitionError struct {
	From  string
	Event string
	err   error
}

func newTransitionError[S, E comparable](from S, event E, err error) *TransitionError {
	return &TransitionError{From: fmt.Sprint(from), Event: fmt.Sprint(event), err: err}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: state %q, event %q", e.err, e.From, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.err }

// IsNoTransitionAvailableError reports whether err means the event does not apply
// to the current state.
func IsNoTransitionAvailableError(err error) bool {
	return errors.Is(err, ErrNoTransition)
}

// IsTransitionRejectedError reports whether err means guards blocked the event.
func IsTransitionRejectedError(err error) bool {
	return errors.Is(err, ErrRejected)
}
