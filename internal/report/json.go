package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/tripscout/internal/model"
)

// JSONWriter outputs trips in JSON format.
//
// Design decision: standard encoding/json is sufficient for a flat list of
// trips; no corner of the output needs streaming or custom codecs.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// tripsDocument is the top-level JSON shape.
type tripsDocument struct {
	Trips []model.Trip `json:"trips"`
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs all trips as {"trips": [...]}. A nil slice is written as [].
func (w *JSONWriter) Write(trips []model.Trip) (int, error) {
	if trips == nil {
		trips = make([]model.Trip, 0)
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(tripsDocument{Trips: trips}, "", "  ")
	} else {
		data, err = json.Marshal(tripsDocument{Trips: trips})
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
