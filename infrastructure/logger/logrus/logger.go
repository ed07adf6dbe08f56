// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Maps the structured field maps onto logrus fields with level support

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// New creates a logrus-backed logger writing to stdout. level accepts the
// usual logrus level names; unknown values fall back to info.
func New(level string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{log: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
