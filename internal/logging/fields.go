package logging

import "log/slog"

// Process-wide keys.
const (
	FieldService = "service"
	FieldVersion = "version"
	FieldSource  = "source"
	FieldError   = "error"
)

// Request keys.
const (
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)

// Game keys.
const (
	FieldSessionID = "session_id"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldGuesses   = "guesses"
	FieldLimit     = "limit"
	FieldTeam      = "team"
	FieldCount     = "count"
)

// commonAttrs returns the service and version attributes that are set.
func commonAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

// ErrAttr formats err under FieldError; a nil error yields an empty attribute,
// which slog drops.
func ErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(FieldError, err.Error())
}
