// Package utils provides common utilities shared across packages
package utils

// Logger is the printf-style logging interface the library packages accept.
// internal/logger provides the real implementation.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards everything. It is the default for matchers and walkers
// built without WithLogger.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}

// TraceFunc receives every path that passed the ignore filter.
type TraceFunc func(path string)
