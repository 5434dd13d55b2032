// Package logging builds the logr.Logger passed through the application.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to stderr in the stdlib log format.
// Higher verbosity enables V(n) messages up to n.
func New(verbosity int) logr.Logger {
	return NewWithWriter(os.Stderr, verbosity)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags)).WithName("tilewalk")
}
