// Package sheetdiff compares the sheets of two workbooks row by row.
package sheetdiff

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options configures where findings are reported.
type Options struct {
	// Output receives value changes, one line each. Defaults to os.Stdout.
	Output io.Writer
	// Logger receives row and column findings at warn level.
	// If nil, those findings are discarded.
	Logger *zerolog.Logger
}

// DefaultOptions returns options writing value changes to stdout.
func DefaultOptions() Options {
	return Options{
		Output: os.Stdout,
	}
}

func (o Options) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
