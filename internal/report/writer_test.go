package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/tripscout/internal/model"
)

func sampleTrips() []model.Trip {
	return []model.Trip{
		{
			ID:          1,
			Destination: "Madrid",
			StartDate:   "2025-09-26",
			EndDate:     "2025-09-28",
			Suggestions: []model.Suggestion{
				model.NewSuggestion("Visit Madrid", "https://example.com/madrid"),
				model.NewSuggestion("Prado Museum", "https://example.com/prado"),
			},
		},
		{
			ID:          2,
			Destination: "Lisbon",
			StartDate:   "2025-10-01",
			EndDate:     "2025-10-05",
			Suggestions: []model.Suggestion{
				model.NewSuggestion("Unable to fetch search results: timeout", ""),
			},
		},
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("prints trips and suggestions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(sampleTrips())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Trip to Madrid from 2025-09-26 to 2025-09-28\n" +
			"  - Visit Madrid (https://example.com/madrid)\n" +
			"  - Prado Museum (https://example.com/prado)\n" +
			"Trip to Lisbon from 2025-10-01 to 2025-10-05\n" +
			"  - Unable to fetch search results: timeout ()\n"
		if buf.String() != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
		}
		if n != len(want) {
			t.Errorf("expected %d bytes, got %d", len(want), n)
		}
	})

	t.Run("no trips prints nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("trip without suggestions prints header only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		trips := []model.Trip{*model.NewTrip("Rome", "2025-11-01", "2025-11-03")}
		if _, err := NewSimpleWriter(&buf).Write(trips); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "Trip to Rome from 2025-11-01 to 2025-11-03\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders trip sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleTrips()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Trips",
			"## Trip to Madrid",
			"## Trip to Lisbon",
			"Visit Madrid",
			"https://example.com/prado",
			"2025-10-05",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if !strings.Contains(out, "placeholder") {
			t.Errorf("expected warning for placeholder trip:\n%s", out)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No trips stored yet.") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})

	t.Run("escapes pipes", func(t *testing.T) {
		t.Parallel()

		if got := escapeCell("a|b"); got != `a\|b` {
			t.Errorf("unexpected escape %q", got)
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes trips document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleTrips()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Trips []model.Trip `json:"trips"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(doc.Trips) != 2 || doc.Trips[0].Suggestions[1].Title != "Prado Museum" {
			t.Errorf("unexpected document %+v", doc)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("nil trips is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "{\"trips\":[]}\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))
		n, err := mw.Write(sampleTrips())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != a.Len()+b.Len() {
			t.Errorf("expected %d bytes, got %d", a.Len()+b.Len(), n)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var b bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(failWriter{}), NewSimpleWriter(&b))
		if _, err := mw.Write(sampleTrips()); err == nil {
			t.Fatal("expected error")
		}
		if b.Len() != 0 {
			t.Error("second writer should not be called")
		}
	})
}
