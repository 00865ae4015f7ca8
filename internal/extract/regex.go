package extract

import (
	"regexp"

	"github.com/nao1215/tripscout/internal/model"
)

// RegexExtractor finds results by matching the raw page text.
//
// Titles are the contents of <h3> elements on a single line; links are the
// escaped targets of anchors written exactly as <a href="/url?q=...&...">.
// This mirrors the result markup served to simple clients and is the most
// tolerant of broken documents, at the cost of breaking when the markup drifts.
type RegexExtractor struct {
	titlePattern *regexp.Regexp
	linkPattern  *regexp.Regexp
}

var (
	// defaultTitlePattern captures heading text, markup included.
	defaultTitlePattern = regexp.MustCompile(`<h3[^>]*>(.*?)</h3>`)

	// defaultLinkPattern captures the escaped URL up to the first '&'.
	defaultLinkPattern = regexp.MustCompile(`<a href="/url\?q=(.*?)&`)
)

// NewRegexExtractor creates a RegexExtractor with the default patterns.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{
		titlePattern: defaultTitlePattern,
		linkPattern:  defaultLinkPattern,
	}
}

// Extract implements Extractor.
func (e *RegexExtractor) Extract(page string, maxResults int) []model.Suggestion {
	titles := submatches(e.titlePattern, page)
	links := submatches(e.linkPattern, page)
	for i, link := range links {
		links[i] = unescape(link)
	}
	return pair(titles, links, maxResults)
}

// submatches returns the first capture group of every match of re in s.
func submatches(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
