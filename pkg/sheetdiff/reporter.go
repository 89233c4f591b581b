package sheetdiff

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/ukaji3/sheetdiff/pkg/sheetdiff/models"
)

// Reporter receives findings as they are produced.
type Reporter interface {
	Report(f models.Finding)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(f models.Finding)

// Report calls fn(f).
func (fn ReporterFunc) Report(f models.Finding) {
	fn(f)
}

// LogReporter prints value changes and logs every other finding as a warning.
type LogReporter struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewLogReporter creates a LogReporter from opts.
func NewLogReporter(opts Options) *LogReporter {
	return &LogReporter{
		out:    opts.output(),
		logger: opts.logger(),
	}
}

// Report prints or logs f according to its kind.
func (r *LogReporter) Report(f models.Finding) {
	if f.Kind == models.ValueChanged {
		fmt.Fprintln(r.out, f.String())
		return
	}
	r.logger.Warn().
		Str("sheet", f.Sheet).
		Stringer("kind", f.Kind).
		Msg(f.String())
}
