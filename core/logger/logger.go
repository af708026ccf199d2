package logger

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	// With returns a child logger carrying the given field on every record.
	With(key string, value any) Logger
}

// StructuredLogger can log structured debug information. It is implemented by
// ZerologLogger and NopLogger.
type StructuredLogger interface {
	Debugw(msg string, fields map[string]any)
}
