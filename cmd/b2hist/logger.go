package main

import (
	"log"
)

// Logger is the interface used for logging by b2hist.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

func (l stdLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.l.Printf("[DEBUG] "+format, args...)
	}
}

func (l stdLogger) Errorf(format string, args ...interface{}) {
	l.l.Printf("[ERROR] "+format, args...)
}
