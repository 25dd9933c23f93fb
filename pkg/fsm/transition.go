package fsm

import (
	"context"
	"fmt"
)

// transition is the concrete Transition used with StateMachine: a source
// state, a target state, and an optional guard over call arguments.
type transition struct {
	machine *StateMachine
	from    State
	to      State
	guard   Guard
}

// NewTransition creates a transition on the given machine from one state to
// another. All fields are fixed at construction.
func NewTransition(m *StateMachine, from, to State, opts ...TransitionOption) (Transition, error) {
	if m == nil || from == nil || to == nil {
		return nil, ErrInvalidTransition
	}

	cfg := transitionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &transition{
		machine: m,
		from:    from,
		to:      to,
		guard:   cfg.guard,
	}, nil
}

func (t *transition) From() State {
	return t.from
}

func (t *transition) To() State {
	return t.to
}

func (t *transition) Current() bool {
	return t.machine.Current().Name() == t.from.Name()
}

func (t *transition) CheckConditions(ctx context.Context, args ...any) bool {
	if t.guard == nil {
		return true
	}
	return t.guard(ctx, args...)
}

// Perform commits the state change directly, bypassing the machine's hooks
// and transition logging. Applicability and guard failures still surface.
func (t *transition) Perform(ctx context.Context, args []any, cb Callback) error {
	if !t.Current() || !t.CheckConditions(ctx, args...) {
		return NewGuardRejectedError(t.String(), t.machine.Current().Name())
	}

	t.machine.setState(t.to)
	if cb != nil {
		cb(ctx, t)
	}
	return nil
}

func (t *transition) String() string {
	return fmt.Sprintf("%s -> %s", t.from.Name(), t.to.Name())
}
