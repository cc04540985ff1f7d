// Package logging writes timestamped records to the gerf log file and
// duplicates them to the console.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	logging "github.com/whyrusleeping/go-logging"

	"github.com/hailam/gerf/internal/paths"
)

const module = "gerf"

var (
	fileFormat    = logging.MustStringFormatter(`%{time:2006/01/02 15:04:05.000000} %{level:-7s} %{message}`)
	consoleFormat = logging.MustStringFormatter(`%{level} %{message}`)
)

// Logger logs to a file and to the console.
type Logger struct {
	*logging.Logger
	closer io.Closer
}

// New returns a Logger writing detailed records to file and short records to
// console. Either may be nil.
func New(file, console io.Writer) *Logger {
	var backends []logging.Backend
	if file != nil {
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), fileFormat))
	}
	if console != nil {
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(console, "", 0), consoleFormat))
	}

	l := logging.MustGetLogger(module)
	l.SetBackend(logging.MultiLogger(backends...))
	return &Logger{Logger: l}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return New(nil, nil)
}

// Setup opens the log file in dir for appending and returns a Logger that
// also writes to console.
func Setup(dir string, console io.Writer) (*Logger, error) {
	f, err := os.OpenFile(paths.LogFile(dir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open the log file")
	}
	l := New(f, console)
	l.closer = f
	return l, nil
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Show returns the location and content of the log file in dir.
func Show(dir string) (string, error) {
	path := paths.LogFile(dir)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Sprintf("%s %s", color.New(color.FgMagenta, color.Bold).Sprint("No log file found:"), path), nil
	}
	if err != nil {
		return "", errors.Wrap(err, "unable to read logs")
	}
	return fmt.Sprintf("%s %s\n%s", color.New(color.Faint, color.Italic).Sprint("Log location:"), path, content), nil
}
