// Package logger wraps the standard library logger with the leveled,
// printf-style helpers shared by every component of the service.
package logger

import (
	"fmt"
	"log"
)

// Logger tags each message with its level. It is safe for concurrent use
// because the underlying log.Logger is.
type Logger struct {
	l *log.Logger
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Error]: %s\n", msg)
}

func (l *Logger) LogInfo(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Info]: %s\n", msg)
}
