// ABOUTME: Logger implementation backed by logrus with optional rotating file output
// ABOUTME: Adapts map fields into logrus.Fields so core code stays independent of the backend

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level and destination
type Config struct {
	// Level is a logrus level name; unknown values fall back to info
	Level string

	// File enables rotating file output in addition to stdout when set
	File string

	// JSON switches to the JSON formatter
	JSON bool
}

// Logger implements interfaces.Logger on a logrus.Logger
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logger from config
func NewLogger(cfg Config) *Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.File != "" {
		logger.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}))
	}

	return &Logger{entry: logger}
}

// NewWithWriter creates a logger that writes to w, used by tests
func NewWithWriter(w io.Writer, level string) *Logger {
	logger := NewLogger(Config{Level: level})
	logger.entry.SetOutput(w)
	return logger
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *Logger {
	return NewWithWriter(io.Discard, "panic")
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Logrus exposes the underlying logger for components that take one directly
func (l *Logger) Logrus() *logrus.Logger {
	return l.entry
}
