package fsm

import "log/slog"

// EventOption configures an event during construction.
type EventOption func(*eventConfig)

type eventConfig struct {
	name   string
	silent bool
	strict bool
}

// WithName sets the event's name.
func WithName(name string) EventOption {
	return func(cfg *eventConfig) {
		cfg.name = name
	}
}

// WithSilent marks the event silent: triggering it applies the chosen
// transition directly and never informs the owning machine, so no pre/post
// hooks fire.
func WithSilent() EventOption {
	return func(cfg *eventConfig) {
		cfg.silent = true
	}
}

// WithStrictSelection disables NextTransition's fallback to the first
// transition when none is applicable from the present state. A strict event
// reports the mismatch at selection time instead of deferring it to apply
// time.
func WithStrictSelection() EventOption {
	return func(cfg *eventConfig) {
		cfg.strict = true
	}
}

// MachineOption configures a state machine during construction.
type MachineOption func(*machineConfig)

type machineConfig struct {
	logger *slog.Logger
	before []TransitionHook
	after  []TransitionHook
}

// WithLogger sets the logger used for transition logging. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) MachineOption {
	return func(cfg *machineConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithBeforeTransition registers a hook fired before each observed state
// commit. Hooks run in registration order; silent events never fire them.
func WithBeforeTransition(hook TransitionHook) MachineOption {
	return func(cfg *machineConfig) {
		if hook != nil {
			cfg.before = append(cfg.before, hook)
		}
	}
}

// WithAfterTransition registers a hook fired after each observed state
// commit. Hooks run in registration order; silent events never fire them.
func WithAfterTransition(hook TransitionHook) MachineOption {
	return func(cfg *machineConfig) {
		if hook != nil {
			cfg.after = append(cfg.after, hook)
		}
	}
}

// TransitionOption configures a single transition.
type TransitionOption func(*transitionConfig)

type transitionConfig struct {
	guard Guard
}

// WithGuard sets the transition's guard condition. A transition without a
// guard accepts any arguments.
func WithGuard(guard Guard) TransitionOption {
	return func(cfg *transitionConfig) {
		cfg.guard = guard
	}
}
