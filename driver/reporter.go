package driver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Checkpoint is one reported cycle.
type Checkpoint struct {
	Time       time.Time `json:"time"`
	Size       int       `json:"size"`
	Iterations int       `json:"iterations"`
	Cycle      []int     `json:"cycle"`
	Final      bool      `json:"final,omitempty"`
}

// Reporter receives checkpoints. A Report error aborts the run.
type Reporter interface {
	Report(Checkpoint) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Checkpoint) error

// Report calls f(cp).
func (f ReporterFunc) Report(cp Checkpoint) error { return f(cp) }

// Discard drops every checkpoint.
var Discard Reporter = ReporterFunc(func(Checkpoint) error { return nil })

// TextReporter writes "<time> <size> <iterations> [cycle]" lines.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report implements Reporter.
func (r *TextReporter) Report(cp Checkpoint) error {
	_, err := fmt.Fprintf(r.w, "%s %d %d %v\n", cp.Time.Format(time.RFC3339), cp.Size, cp.Iterations, cp.Cycle)
	return err
}

// JSONReporter writes one JSON object per checkpoint.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter returns a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Report implements Reporter.
func (r *JSONReporter) Report(cp Checkpoint) error {
	return r.enc.Encode(cp)
}

// MultiReporter fans a checkpoint out to every reporter and joins their errors.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(cp Checkpoint) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(cp); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
