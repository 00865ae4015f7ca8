package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nao1215/tripscout/internal/model"
)

// Extractor produces suggestions from the text of a search-results page.
type Extractor interface {
	// Extract returns at most maxResults suggestions in page order.
	// A negative bound is treated as zero.
	Extract(page string, maxResults int) []model.Suggestion
}

// Func adapts a plain function to the Extractor interface.
type Func func(page string, maxResults int) []model.Suggestion

// Extract calls f.
func (f Func) Extract(page string, maxResults int) []model.Suggestion {
	return f(page, maxResults)
}

// Kind names an extraction strategy in configuration.
type Kind string

const (
	// KindRegex selects RegexExtractor.
	KindRegex Kind = "regex"
	// KindHTML selects HTMLExtractor.
	KindHTML Kind = "html"
	// KindJSON selects JSONExtractor.
	KindJSON Kind = "json"
)

// Kinds returns all supported strategy names.
func Kinds() []Kind {
	return []Kind{KindRegex, KindHTML, KindJSON}
}

// New returns the extractor registered under kind.
// The JSON strategy uses DefaultJSONPaths; build it with NewJSONExtractor
// to customize the paths.
func New(kind Kind) (Extractor, error) {
	switch kind {
	case KindRegex, "":
		return NewRegexExtractor(), nil
	case KindHTML:
		return NewHTMLExtractor(), nil
	case KindJSON:
		return NewJSONExtractor(DefaultJSONPaths()), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", kind)
	}
}

// redirectPrefix marks result anchors. The escaped target URL follows it
// and runs until the next '&'.
const redirectPrefix = "/url?q="

// markupRegex matches any angle-bracket-delimited fragment.
var markupRegex = regexp.MustCompile(`<.*?>`)

// stripMarkup removes every <...> fragment from s.
func stripMarkup(s string) string {
	return markupRegex.ReplaceAllString(s, "")
}

// pair zips titles and links by position up to the bound.
// Nothing ties a heading to its anchor beyond order, so a heading without
// a result link shifts every following pair.
func pair(titles, links []string, maxResults int) []model.Suggestion {
	n := min(len(titles), len(links), max(maxResults, 0))

	suggestions := make([]model.Suggestion, 0, n)
	for i := range n {
		suggestions = append(suggestions, model.NewSuggestion(stripMarkup(titles[i]), links[i]))
	}
	return suggestions
}

// redirectTarget returns the escaped URL carried by a redirect href, or
// false when href is not a result link. The value ends at the first '&';
// an href without one is not treated as a result link.
func redirectTarget(href string) (string, bool) {
	rest, ok := strings.CutPrefix(href, redirectPrefix)
	if !ok {
		return "", false
	}
	target, _, found := strings.Cut(rest, "&")
	if !found {
		return "", false
	}
	return target, true
}
