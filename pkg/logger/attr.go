package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// MachineID records the machine instance identifier under the key "machine_id".
// If id is nil, it returns an empty Attr.
func MachineID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("machine_id", id)
}

// EventName records the triggering event under the key "event".
func EventName(name string) slog.Attr {
	return slog.String("event", name)
}

// FromState records the source state under the key "from".
func FromState(name string) slog.Attr {
	return slog.String("from", name)
}

// ToState records the target state under the key "to".
func ToState(name string) slog.Attr {
	return slog.String("to", name)
}

// Transition records a transition's textual form under the key "transition".
func Transition(s string) slog.Attr {
	return slog.String("transition", s)
}
