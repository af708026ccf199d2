package logger

import (
	"io"

	corelogger "github.com/kilianp07/linpredict/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}
func (n NopLogger) With(string, any) Logger     { return n }

// Options configure a ZerologLogger.
type Options struct {
	// Output receives the records. Defaults to stderr so stdout stays
	// reserved for program output.
	Output io.Writer
	// Level is a zerolog level name ("debug", "info", ...). Empty means info.
	Level string
	// Format is "json" or "console". Empty selects console when APP_ENV=dev.
	Format string
}
