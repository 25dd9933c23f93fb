package fsm

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrig/fsmkit/pkg/syncx"
)

// DefaultEventName is the sentinel name given to events constructed without
// an explicit name.
const DefaultEventName = "default"

// Event holds the ordered candidate-transition list for one event name and
// implements the select-and-trigger protocol. The list is append-only and
// insertion order is significant: selection is first-match-wins, with the
// first transition acting as the default fallback.
//
// name and silent are fixed at construction; the transition list is the only
// mutable field and is guarded by a single shared/exclusive lock. Add and
// trigger calls take the exclusive section, selection reads take the shared
// section, so an Event may be used from many goroutines concurrently.
type Event struct {
	name    string
	silent  bool
	strict  bool
	machine Machine

	transitions *syncx.Guarded[[]Transition]
}

// NewEvent creates an event owned by the given machine. The name defaults to
// DefaultEventName and silent defaults to false; both are immutable once set.
func NewEvent(m Machine, opts ...EventOption) (*Event, error) {
	if m == nil {
		return nil, ErrNilMachine
	}

	cfg := eventConfig{name: DefaultEventName}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Event{
		name:        cfg.name,
		silent:      cfg.silent,
		strict:      cfg.strict,
		machine:     m,
		transitions: syncx.NewGuarded([]Transition(nil)),
	}, nil
}

// Name returns the event's name.
func (e *Event) Name() string {
	return e.name
}

// Silent reports whether triggering this event bypasses the machine's
// notification pipeline.
func (e *Event) Silent() bool {
	return e.silent
}

// Add appends the given transitions in order. Additions are serialized
// against each other and against trigger calls; a transition is never
// reordered or removed once appended.
func (e *Event) Add(transitions ...Transition) error {
	for _, t := range transitions {
		if t == nil {
			return ErrNilTransition
		}
	}
	e.transitions.Write(func(v *[]Transition) {
		*v = append(*v, transitions...)
	})
	return nil
}

// Append is an alias for Add.
func (e *Event) Append(transitions ...Transition) error {
	return e.Add(transitions...)
}

// Transitions returns a snapshot of the candidate list in insertion order.
func (e *Event) Transitions() []Transition {
	var out []Transition
	e.transitions.Read(func(v []Transition) {
		out = append(out, v...)
	})
	return out
}

// NextTransition returns the first transition applicable from the machine's
// present state. When none match it falls back to the first transition in
// the list regardless of applicability, so that selection is deterministic
// and the "invalid transition" error is deferred to execution; with strict
// selection enabled the fallback is disabled. Returns nil only when the list
// is empty (or nothing matched under strict selection).
func (e *Event) NextTransition() Transition {
	var t Transition
	e.transitions.Read(func(v []Transition) {
		t = e.nextLocked(v)
	})
	return t
}

// FindTransition returns the first transition that is applicable from the
// machine's present state and whose guard accepts the given arguments.
// Unlike NextTransition there is no fallback: nil is a legitimate,
// reportable absence.
func (e *Event) FindTransition(ctx context.Context, args ...any) Transition {
	var found Transition
	e.transitions.Read(func(v []Transition) {
		for _, t := range v {
			if t.Current() && t.CheckConditions(ctx, args...) {
				found = t
				return
			}
		}
	})
	return found
}

// Call triggers the event: it selects a transition and either applies it
// directly (silent events) or delegates to the owning machine's observed
// execution protocol. The whole operation runs in the exclusive section, so
// triggers serialize against Add and against each other.
func (e *Event) Call(ctx context.Context, args ...any) error {
	return e.CallWithCallback(ctx, nil, args...)
}

// CallWithCallback is Call with an optional callback passed through to the
// execution path. The callback fires after the transition applies; guard and
// applicability failures propagate unchanged and suppress it.
func (e *Event) CallWithCallback(ctx context.Context, cb Callback, args ...any) error {
	var err error
	e.transitions.Write(func(v *[]Transition) {
		// Selection reuses the already-held exclusive section instead of
		// taking the shared lock again; a second acquisition from the same
		// goroutine would deadlock.
		t := e.nextLocked(*v)
		if t == nil {
			if len(*v) == 0 {
				err = ErrEmptyTransitionSet
			} else {
				err = NewNoMatchingTransitionError(e.name, e.machine.Current().Name())
			}
			return
		}

		if e.silent {
			// Silent path: apply directly, never informing the machine, so
			// no hooks fire and no state-change notification is emitted.
			err = t.Perform(ctx, args, cb)
			return
		}
		err = e.machine.performTransition(ctx, e.name, t, args, cb)
	})
	return err
}

// nextLocked implements transition selection. Callers must hold the shared
// or exclusive section.
func (e *Event) nextLocked(transitions []Transition) Transition {
	for _, t := range transitions {
		if t.Current() {
			return t
		}
	}
	if e.strict || len(transitions) == 0 {
		return nil
	}
	return transitions[0]
}

// Compare orders events lexicographically by (name, silent, transitions),
// with false ordered before true and transition lists compared element-wise
// by (source, target) names, shorter lists first on a tie.
func (e *Event) Compare(other *Event) int {
	if c := strings.Compare(e.name, other.name); c != 0 {
		return c
	}
	if e.silent != other.silent {
		if !e.silent {
			return -1
		}
		return 1
	}

	a, b := e.Transitions(), other.Transitions()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareTransitions(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether two events have the same name, silence flag, and
// transition list by value.
func (e *Event) Equal(other *Event) bool {
	return e.Compare(other) == 0
}

// String returns the event's name.
func (e *Event) String() string {
	return e.name
}

// GoString returns the diagnostic form including the silence flag and the
// full transition list.
func (e *Event) GoString() string {
	return fmt.Sprintf("fsm.Event{name: %q, silent: %t, transitions: %v}", e.name, e.silent, e.Transitions())
}
