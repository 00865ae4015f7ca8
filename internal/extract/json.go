package extract

import (
	"github.com/tidwall/gjson"

	"github.com/nao1215/tripscout/internal/model"
)

// JSONPaths locates results inside a structured search-API response.
// Paths use gjson syntax.
type JSONPaths struct {
	// Items is the path to the array of results.
	Items string `yaml:"items,omitempty"`

	// Title is the path to the title, relative to one item.
	Title string `yaml:"title,omitempty"`

	// Link is the path to the target URL, relative to one item.
	Link string `yaml:"link,omitempty"`
}

// DefaultJSONPaths matches the common {"results":[{"title":..,"url":..}]} shape.
func DefaultJSONPaths() JSONPaths {
	return JSONPaths{
		Items: "results",
		Title: "title",
		Link:  "url",
	}
}

// JSONExtractor reads results from a JSON response body.
//
// Unlike the page strategies, titles and links come from the same item, so
// they cannot drift out of step. Items missing either field are skipped.
// Links are used verbatim since API responses do not percent-encode them.
type JSONExtractor struct {
	paths JSONPaths
}

// NewJSONExtractor creates a JSONExtractor. Empty paths fall back to
// the corresponding DefaultJSONPaths entry.
func NewJSONExtractor(paths JSONPaths) *JSONExtractor {
	defaults := DefaultJSONPaths()
	if paths.Items == "" {
		paths.Items = defaults.Items
	}
	if paths.Title == "" {
		paths.Title = defaults.Title
	}
	if paths.Link == "" {
		paths.Link = defaults.Link
	}
	return &JSONExtractor{paths: paths}
}

// Extract implements Extractor.
func (e *JSONExtractor) Extract(page string, maxResults int) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if maxResults <= 0 || !gjson.Valid(page) {
		return suggestions
	}

	items := gjson.Get(page, e.paths.Items)
	if !items.IsArray() {
		return suggestions
	}

	items.ForEach(func(_, item gjson.Result) bool {
		title := item.Get(e.paths.Title)
		link := item.Get(e.paths.Link)
		if !title.Exists() || !link.Exists() || link.String() == "" {
			return true
		}
		suggestions = append(suggestions, model.NewSuggestion(stripMarkup(title.String()), link.String()))
		return len(suggestions) < maxResults
	})

	return suggestions
}
