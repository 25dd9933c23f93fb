// Package fsm implements the event-dispatch core of a finite-state-machine
// runtime: named events bound to ordered candidate transitions, first-match
// transition selection against the machine's present state, optional guard
// evaluation over call arguments, and silent or observed execution.
//
// The package revolves around two contracts, Transition and Machine, plus
// the Event type that binds them:
//  1. Event owns the append-only, ordered candidate list for one event name
//  2. Transition knows whether it applies from the present state (Current),
//     whether its guard accepts the call arguments (CheckConditions), and how
//     to apply itself directly (Perform)
//  3. Machine owns the current state and executes observed transitions with
//     full notification semantics
//
// A reference StateMachine implementation ships with the package, together
// with a concrete transition type and a fluent Builder. The Machine
// interface's transition-execution entry point is unexported, keeping Event
// a privileged caller: external code triggers events, it does not drive the
// execution protocol itself.
//
// # Selection semantics
//
// NextTransition returns the first transition whose source matches the
// machine's present state. When none match it falls back to the first
// transition in the list, deferring the "invalid transition" failure to
// apply time, where it surfaces as a GuardRejectedError. This keeps
// selection deterministic even for misdeclared machines. Events built with
// WithStrictSelection disable the fallback and report the mismatch at
// selection time as a NoMatchingTransitionError instead.
//
// FindTransition additionally evaluates guards against the call arguments
// and has no fallback: a nil result is a legitimate "nothing qualifies"
// answer, distinct from the empty-list case.
//
// # Silent events
//
// Events built with WithSilent apply the chosen transition directly. The
// owning machine is never informed: no before/after hooks fire and no
// transition is logged. Guard and applicability failures still propagate.
//
// # Usage
//
//	const (
//	    Idle    = fsm.StringState("idle")
//	    Running = fsm.StringState("running")
//	)
//
//	machine, err := fsm.NewBuilder(Idle).
//	    Event("start").
//	    Transition(Idle, Running).
//	    Build()
//	if err != nil {
//	    // ...
//	}
//
//	if err := machine.Fire(ctx, "start"); err != nil {
//	    // ...
//	}
//
// # Error Handling
//
// Triggering an event with no transitions fails with ErrEmptyTransitionSet.
// Apply-time rejections surface as *GuardRejectedError, strict-selection
// misses as *NoMatchingTransitionError; both have errors.As helper
// predicates (IsGuardRejectedError, IsNoMatchingTransitionError). The event
// never retries and passes collaborator failures through unchanged.
//
// # Concurrency
//
// An Event may be shared freely across goroutines. Its transition list is
// the only mutable field and sits behind a single shared/exclusive lock:
// Add and Call take the exclusive section, NextTransition, FindTransition,
// and comparisons take the shared section. Call performs its internal
// selection on the already-held exclusive section rather than re-acquiring
// the shared lock, which is what makes the nested select-inside-trigger
// path deadlock-free. All operations block until the lock is available; no
// timeouts and no cancellation once a transition starts applying.
//
// # Ordering
//
// Events order lexicographically by (name, silent, transitions), with
// transition lists compared element-wise by source and target state names.
// Equal is Compare == 0, so two events are equal only when all three
// components match by value.
package fsm
