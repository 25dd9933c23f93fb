package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTransitionSet indicates an event was triggered with no
	// transitions registered. This is a misconfigured event, not a
	// legitimate "nothing matched" outcome.
	ErrEmptyTransitionSet = errors.New("event has no transitions")

	// ErrNilMachine indicates an event was constructed without an owning machine.
	ErrNilMachine = errors.New("machine cannot be nil")

	// ErrNilTransition indicates a nil transition was appended to an event.
	ErrNilTransition = errors.New("transition cannot be nil")

	// ErrInvalidTransition indicates transition construction with a nil
	// machine, source, or target state.
	ErrInvalidTransition = errors.New("invalid transition: machine, from, and to cannot be nil")

	// ErrNilState indicates a machine was constructed without an initial state.
	ErrNilState = errors.New("initial state cannot be nil")

	// ErrDuplicateEvent indicates an event name is already registered on the machine.
	ErrDuplicateEvent = errors.New("event already registered")

	// ErrUnknownEvent indicates a fired event name is not registered on the machine.
	ErrUnknownEvent = errors.New("unknown event")
)

// GuardRejectedError indicates the chosen transition was not applicable from
// the machine's present state, or its guard rejected the call arguments, at
// apply time. Selection falls back to the first transition when nothing
// matches the present state, so this error is reachable on every non-strict
// trigger path.
type GuardRejectedError struct {
	Transition string
	State      string
}

func (e *GuardRejectedError) Error() string {
	return fmt.Sprintf("transition '%s' rejected from state '%s'", e.Transition, e.State)
}

func NewGuardRejectedError(transition, state string) *GuardRejectedError {
	return &GuardRejectedError{
		Transition: transition,
		State:      state,
	}
}

// NoMatchingTransitionError indicates strict selection found no transition
// applicable from the machine's present state. Distinct from
// ErrEmptyTransitionSet: transitions exist, none matched.
type NoMatchingTransitionError struct {
	Event string
	State string
}

func (e *NoMatchingTransitionError) Error() string {
	return fmt.Sprintf("no transition for event '%s' matches state '%s'", e.Event, e.State)
}

func NewNoMatchingTransitionError(event, state string) *NoMatchingTransitionError {
	return &NoMatchingTransitionError{
		Event: event,
		State: state,
	}
}

func IsGuardRejectedError(err error) bool {
	var e *GuardRejectedError
	return errors.As(err, &e)
}

func IsNoMatchingTransitionError(err error) bool {
	var e *NoMatchingTransitionError
	return errors.As(err, &e)
}
