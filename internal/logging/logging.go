package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at the named level ("debug", "info", ...).
// Unknown or empty levels fall back to info. Production uses the JSON formatter.
func New(out io.Writer, level string, production bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if production {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// FromEnv builds a logger from LOG_LEVEL and API_ENV.
func FromEnv() *logrus.Logger {
	return New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("API_ENV") == "production")
}

// Discard is a logger for tests.
func Discard() *logrus.Logger {
	return New(io.Discard, "panic", false)
}
