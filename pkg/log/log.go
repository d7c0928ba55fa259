package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used throughout the emulator. A
// *logrus.Logger satisfies it, as does the null logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// New returns a plain text logger writing to stderr.
func New() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewDebug is the same as New, but with debug output enabled.
func NewDebug() Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(logrus.DebugLevel)
	return l
}
