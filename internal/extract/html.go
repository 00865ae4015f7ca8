package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/nao1215/tripscout/internal/model"
)

// HTMLExtractor finds results by walking the parsed document.
//
// Design decision: We use golang.org/x/net/html here as an alternative to
// the regex strategy because:
//  1. Headings split across lines or with nested markup are still found
//  2. Attribute quoting and entity encoding do not matter
//  3. The parser recovers from malformed HTML the same way browsers do
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTMLExtractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract implements Extractor.
func (e *HTMLExtractor) Extract(page string, maxResults int) []model.Suggestion {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return make([]model.Suggestion, 0)
	}

	titles := make([]string, 0)
	links := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h3":
				titles = append(titles, strings.TrimSpace(textContent(n)))
			case "a":
				if target, ok := redirectTarget(getAttr(n, "href")); ok {
					links = append(links, unescape(target))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return pair(titles, links, maxResults)
}

// textContent concatenates all text nodes below n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
