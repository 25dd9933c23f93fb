package fsm

import (
	"context"
	"fmt"
	"strings"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// Guard evaluates whether a transition may fire for the given call arguments.
// A nil guard means "always true".
type Guard func(ctx context.Context, args ...any) bool

// Callback is an optional caller-supplied hook invoked with the transition
// that was applied. It rides along with the trigger call and is passed
// through to the execution path untouched; nil means no callback.
type Callback func(ctx context.Context, t Transition)

// Transition is a testable, applicable unit of state change. Implementations
// know their source and target states, whether they are valid from the owning
// machine's present state, and how to apply themselves directly.
type Transition interface {
	fmt.Stringer

	// From returns the source state the transition leaves.
	From() State

	// To returns the target state the transition enters.
	To() State

	// Current reports whether the owning machine's present state matches
	// the transition's source state.
	Current() bool

	// CheckConditions reports whether the transition's guard accepts the
	// given call arguments. A transition without a guard always accepts.
	CheckConditions(ctx context.Context, args ...any) bool

	// Perform applies the transition directly, committing the state change
	// without involving the machine's notification pipeline. Used only on
	// the silent trigger path; guard and applicability failures still
	// surface as errors.
	Perform(ctx context.Context, args []any, cb Callback) error
}

// Machine owns a set of events and the current state. Event holds a Machine
// reference and drives the observed transition protocol through it.
//
// The transition-execution entry point is unexported: Event is a privileged
// caller and only machines defined in this package can be driven by one.
type Machine interface {
	// Current returns the machine's present state.
	Current() State

	// performTransition executes the chosen transition with full
	// notification semantics: guard re-validation, state commit, and
	// pre/post hook firing. The event name identifies the trigger to hooks.
	performTransition(ctx context.Context, event string, t Transition, args []any, cb Callback) error
}

// compareTransitions orders two transitions by (source, target) state names.
func compareTransitions(a, b Transition) int {
	if c := strings.Compare(a.From().Name(), b.From().Name()); c != 0 {
		return c
	}
	return strings.Compare(a.To().Name(), b.To().Name())
}
