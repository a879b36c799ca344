package engine

import "fmt"

// Logger receives diagnostic messages from an Engine's state machine,
// at the same points the reference implementation calls tgen_debug and
// tgen_warning: before each transition/emission draw, and when a draw
// fails and the engine falls back to termination. A host that wants
// this visibility supplies its own Logger via WithLogger; by default
// an Engine logs nothing.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Warnf(string, ...interface{})  {}

// PrintfLogger adapts any func(string, ...interface{}) (such as
// log.Printf) into a Logger, sending both Debugf and Warnf through it.
type PrintfLogger func(format string, args ...interface{})

// Debugf implements Logger.
func (p PrintfLogger) Debugf(format string, args ...interface{}) { p(format, args...) }

// Warnf implements Logger.
func (p PrintfLogger) Warnf(format string, args ...interface{}) { p(fmt.Sprintf("WARN: %s", format), args...) }
