package fsm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrig/fsmkit/pkg/logger"
)

// TransitionHook observes an observed (non-silent) transition. Hooks receive
// the source and target states, the triggering event name, and the call
// arguments; they cannot veto the transition.
type TransitionHook func(ctx context.Context, from, to State, event string, args []any)

// StateMachine is the reference Machine implementation: it owns the current
// state, a named event registry, and the notification pipeline invoked
// during observed transitions.
type StateMachine struct {
	id      uuid.UUID
	initial State
	logger  *slog.Logger
	before  []TransitionHook
	after   []TransitionHook

	mu      sync.RWMutex
	current State
	events  map[string]*Event
}

// NewStateMachine creates a machine starting in the given state.
func NewStateMachine(initial State, opts ...MachineOption) (*StateMachine, error) {
	if initial == nil {
		return nil, ErrNilState
	}

	cfg := machineConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &StateMachine{
		id:      uuid.New(),
		initial: initial,
		current: initial,
		events:  make(map[string]*Event),
		logger:  cfg.logger,
		before:  cfg.before,
		after:   cfg.after,
	}, nil
}

// ID returns the machine's instance identifier.
func (m *StateMachine) ID() uuid.UUID {
	return m.id
}

// Current returns the machine's present state.
func (m *StateMachine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Reset restores the machine to its initial state without firing hooks.
func (m *StateMachine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// AddEvent creates an event owned by this machine and registers it under its
// name. Event names are unique per machine.
func (m *StateMachine) AddEvent(opts ...EventOption) (*Event, error) {
	ev, err := NewEvent(m, opts...)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.events[ev.Name()]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateEvent, ev.Name())
	}
	m.events[ev.Name()] = ev
	return ev, nil
}

// Event returns the registered event with the given name.
func (m *StateMachine) Event(name string) (*Event, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ev, ok := m.events[name]
	return ev, ok
}

// Fire triggers the named event with the given arguments.
func (m *StateMachine) Fire(ctx context.Context, name string, args ...any) error {
	ev, ok := m.Event(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, name)
	}
	return ev.Call(ctx, args...)
}

// CanFire reports whether the named event has a transition that is both
// applicable from the present state and accepted by its guard for the given
// arguments.
func (m *StateMachine) CanFire(ctx context.Context, name string, args ...any) bool {
	ev, ok := m.Event(name)
	if !ok {
		return false
	}
	return ev.FindTransition(ctx, args...) != nil
}

// performTransition is the privileged transition-execution entry point used
// by Event on the non-silent path. It re-validates applicability and guard,
// fires before hooks, commits the state, then fires after hooks and the
// caller's callback. A rejected transition leaves the state untouched and
// fires nothing.
func (m *StateMachine) performTransition(ctx context.Context, event string, t Transition, args []any, cb Callback) error {
	if t == nil {
		return ErrNilTransition
	}
	if !t.Current() || !t.CheckConditions(ctx, args...) {
		return NewGuardRejectedError(t.String(), m.Current().Name())
	}

	from, to := t.From(), t.To()
	for _, hook := range m.before {
		hook(ctx, from, to, event, args)
	}

	m.setState(to)

	for _, hook := range m.after {
		hook(ctx, from, to, event, args)
	}
	if cb != nil {
		cb(ctx, t)
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "transition applied",
		logger.MachineID(m.id.String()),
		logger.EventName(event),
		logger.FromState(from.Name()),
		logger.ToState(to.Name()))

	return nil
}

// setState commits the current state. Used by performTransition and by the
// direct-apply path of concrete transitions.
func (m *StateMachine) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}
