// Package histtest provides helpers for testing code that logs.
package histtest

import (
	"fmt"
	"sync"
	"testing"
)

// TestLogger writes log messages to a testing.TB, and records them so
// tests can make assertions about what was logged.
type TestLogger struct {
	t testing.TB

	mu     sync.Mutex
	debugs []string
	errors []string
}

// NewTestLogger returns a TestLogger that logs to t.
func NewTestLogger(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

// Debugf logs and records a debug message.
func (l *TestLogger) Debugf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.t.Logf("[DEBUG] %s", msg)
	l.mu.Lock()
	l.debugs = append(l.debugs, msg)
	l.mu.Unlock()
}

// Errorf logs and records an error message.
func (l *TestLogger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.t.Logf("[ERROR] %s", msg)
	l.mu.Lock()
	l.errors = append(l.errors, msg)
	l.mu.Unlock()
}

// Debugs returns the debug messages logged so far.
func (l *TestLogger) Debugs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.debugs...)
}

// Errors returns the error messages logged so far.
func (l *TestLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}
