// Package logger provides the structured logger shared by all components.
// It is a thin wrapper over logrus so components can tag themselves with a
// "component" field and the CLI can set the level globally.
package logger

import (
	"github.com/sirupsen/logrus"
)

// Logger carries structured fields through component code.
type Logger = logrus.Entry

var base = logrus.New()

// Log is the root logger for code that needs no extra fields.
var Log = logrus.NewEntry(base)

// WithField returns a logger tagged with the given field.
// Components typically call logger.WithField("component", "dispatcher").
func WithField(key string, value interface{}) *Logger {
	return Log.WithField(key, value)
}

// SetLevel sets the global log level from its string name (e.g. "trace", "debug").
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func Info(args ...interface{})                 { Log.Info(args...) }
func Infof(format string, args ...interface{}) { Log.Infof(format, args...) }
func Warnf(format string, args ...interface{}) { Log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}
func Tracef(format string, args ...interface{}) { Log.Tracef(format, args...) }
