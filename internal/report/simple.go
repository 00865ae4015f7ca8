package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/tripscout/internal/model"
)

// SimpleWriter outputs the plain console listing:
//
//	Trip to Madrid from 2025-09-26 to 2025-09-28
//	  - Visit Madrid (https://example.com/madrid)
//
// A placeholder suggestion prints with empty parentheses.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs all trips in order. No trips means no output.
func (w *SimpleWriter) Write(trips []model.Trip) (int, error) {
	var sb strings.Builder
	for _, trip := range trips {
		fmt.Fprintf(&sb, "Trip to %s from %s to %s\n", trip.Destination, trip.StartDate, trip.EndDate)
		for _, s := range trip.Suggestions {
			fmt.Fprintf(&sb, "  - %s (%s)\n", s.Title, s.Link)
		}
	}
	return io.WriteString(w.output, sb.String())
}
