package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/tripscout/internal/model"
)

// MarkdownWriter outputs trips as a Markdown document.
//
// Design decision: the nao1215/markdown builder keeps table escaping and
// GitHub alerts out of hand-written string formatting.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs all trips in Markdown format.
func (w *MarkdownWriter) Write(trips []model.Trip) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Trips")
	md.PlainText("")

	if len(trips) == 0 {
		md.Note("No trips stored yet.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	for _, trip := range trips {
		w.writeTrip(md, trip)
	}

	return len(md.String()), md.Build()
}

// writeTrip writes one trip section.
func (w *MarkdownWriter) writeTrip(md *markdown.Markdown, trip model.Trip) {
	md.H2("Trip to " + trip.Destination)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"ID", strconv.FormatInt(trip.ID, 10)},
			{"Start", trip.StartDate},
			{"End", trip.EndDate},
			{"Suggestions", strconv.Itoa(len(trip.Suggestions))},
		},
	})
	md.PlainText("")

	if len(trip.Suggestions) == 0 {
		md.PlainText("No suggestions.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(trip.Suggestions))
	degraded := false
	for i, s := range trip.Suggestions {
		link := s.Link
		if s.IsPlaceholder() {
			degraded = true
			link = "-"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), escapeCell(s.Title), escapeCell(link)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Title", "Link"},
		Rows:   rows,
	})
	md.PlainText("")

	if degraded {
		md.Warningf("The search for this trip failed; a placeholder was stored instead of results.")
		md.PlainText("")
	}
}

// escapeCell keeps pipes in titles and links from splitting table columns.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
