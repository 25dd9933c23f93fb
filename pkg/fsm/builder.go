package fsm

import "fmt"

// Builder provides a fluent API for assembling a machine with its events and
// transitions. Errors are collected and reported by Build, so calls can be
// chained without per-step checks.
type Builder struct {
	machine *StateMachine
	current *Event
	err     error
}

// NewBuilder creates a builder for a machine starting in the given state.
func NewBuilder(initial State, opts ...MachineOption) *Builder {
	m, err := NewStateMachine(initial, opts...)
	return &Builder{machine: m, err: err}
}

// Event registers a new event and makes it the target of subsequent
// Transition calls.
func (b *Builder) Event(name string, opts ...EventOption) *Builder {
	if b.err != nil {
		return b
	}
	ev, err := b.machine.AddEvent(append([]EventOption{WithName(name)}, opts...)...)
	if err != nil {
		b.err = err
		return b
	}
	b.current = ev
	return b
}

// Transition appends a from->to transition to the current event.
func (b *Builder) Transition(from, to State, opts ...TransitionOption) *Builder {
	if b.err != nil {
		return b
	}
	if b.current == nil {
		b.err = fmt.Errorf("builder: transition declared before any event")
		return b
	}
	t, err := NewTransition(b.machine, from, to, opts...)
	if err != nil {
		b.err = err
		return b
	}
	if err := b.current.Add(t); err != nil {
		b.err = err
	}
	return b
}

// Build returns the assembled machine, or the first error encountered while
// declaring events and transitions.
func (b *Builder) Build() (*StateMachine, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.machine, nil
}
