package logging

import "log/slog"

// Common field names for consistent logging across the relay.
const (
	FieldService    = "service"
	FieldIP         = "ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldEventKind  = "event_kind"
	FieldAction     = "action"
	FieldIdentifier = "identifier"
)

// Service returns a slog attribute for the service name.
func Service(name string) slog.Attr {
	return slog.String(FieldService, name)
}

// IP returns a slog attribute for the client IP address.
func IP(ip string) slog.Attr {
	return slog.String(FieldIP, ip)
}

// Method returns a slog attribute for the HTTP method.
func Method(method string) slog.Attr {
	return slog.String(FieldMethod, method)
}

// Path returns a slog attribute for the HTTP path.
func Path(path string) slog.Attr {
	return slog.String(FieldPath, path)
}

// Status returns a slog attribute for an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int(FieldStatus, code)
}

// Duration returns a slog attribute for duration in milliseconds.
func Duration(ms int64) slog.Attr {
	return slog.Int64(FieldDuration, ms)
}

// Error returns a slog attribute for an error value.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// EventKind returns a slog attribute for the inbound event kind.
func EventKind(kind string) slog.Attr {
	return slog.String(FieldEventKind, kind)
}

// Action returns a slog attribute for the inbound event action.
func Action(action string) slog.Attr {
	return slog.String(FieldAction, action)
}

// Identifier returns a slog attribute for the issue identifier.
func Identifier(id string) slog.Attr {
	return slog.String(FieldIdentifier, id)
}
