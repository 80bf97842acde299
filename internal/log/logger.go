// Package log is a thin facade over logrus shared by all swatch commands.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level output.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// With returns an entry carrying a single structured field.
func With(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

func Info(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warn(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Debug(format string, args ...interface{}) { logger.Debugf(format, args...) }
