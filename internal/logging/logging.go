// Package logging provides the structured logger shared by every
// command and the transport loop, wrapping charmbracelet/log the way
// the teacher's dependency graph implies but its own files (which
// used the stdlib log package) never actually set up.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger for the named component, writing to stderr
// with the component name as its report prefix.
func New(component string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          component,
	})
	if lvl := os.Getenv("MIDI2_LOG_LEVEL"); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			l.SetLevel(parsed)
		}
	}
	return l
}
