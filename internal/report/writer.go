package report

import (
	"io"

	"github.com/nao1215/tripscout/internal/model"
)

// Writer defines the interface for trip report output.
type Writer interface {
	// Write outputs the trips in order.
	// Returns the number of bytes written and any error encountered.
	Write(trips []model.Trip) (int, error)
}

// MultiWriter writes to multiple Writers in sequence.
//
// Design decision: this is separate from io.MultiWriter because Writer
// takes trips, not raw bytes, and each destination renders its own format.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the trips to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(trips []model.Trip) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(trips)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
