// Package logging holds the process-wide logrus logger used by the
// command-line tools. Library packages never log.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var (
	log *logrus.Logger

	// file is the --log-file sink opened by Init, if any.
	file   *os.File
	stderr io.Writer
)

// Init replaces the logger. Unknown levels fall back to info. Output goes
// to stderr, to logFile when set, or to both.
func Init(level, logFile string, errOut io.Writer) error {
	if err := Close(); err != nil {
		return err
	}
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	writers := []io.Writer{errOut}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		file = f
		writers = append(writers, f)
	}
	l.SetOutput(io.MultiWriter(writers...))

	log = l
	stderr = errOut
	return nil
}

// Close closes the log file opened by Init. Later messages go to stderr
// only. It is safe to call when no file is open.
func Close() error {
	if file == nil {
		return nil
	}
	f := file
	file = nil
	if log != nil && stderr != nil {
		log.SetOutput(stderr)
	}
	return f.Close()
}

// Get returns the logger, creating a default one on first use.
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

// WithFields returns an entry carrying fields on the process logger.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}

func Debugf(format string, args ...interface{}) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Get().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Get().Errorf(format, args...)
}
