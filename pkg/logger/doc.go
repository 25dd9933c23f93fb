// Package logger provides a thin wrapper around Go's slog package with
// functional options for configuration and helper attribute constructors
// used across the fsmkit packages.
//
// New builds a *slog.Logger from a set of Option functions: output format
// (text or json), minimum level, destination writer, and static attributes
// applied to every record. Helper constructors such as MachineID, EventName,
// FromState, and ToState keep attribute naming consistent wherever the
// runtime logs a transition.
//
//	log := logger.New(
//	    logger.WithJSONFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	machine, err := fsm.NewStateMachine(initial, fsm.WithLogger(log))
package logger
