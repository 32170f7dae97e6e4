// Package report renders reconciliation reports as text lines and JSON.
package report

import (
	"fmt"
	"io"
)

// Sink writes every line to all of its writers at once, in the order the
// lines are produced. Nothing is buffered.
type Sink struct {
	w   io.Writer
	err error
}

// NewSink creates a sink mirroring lines to writers (typically stdout and the
// report file).
func NewSink(writers ...io.Writer) *Sink {
	return &Sink{w: io.MultiWriter(writers...)}
}

// Line writes one formatted line. The first write error is kept and later
// lines are ignored.
func (s *Sink) Line(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format+"\n", args...)
}

// Err returns the first write error.
func (s *Sink) Err() error {
	return s.err
}
