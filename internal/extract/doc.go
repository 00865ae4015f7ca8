// Package extract turns a raw search-results page into an ordered list of
// suggestions.
//
// # Architecture
//
// Every strategy implements the Extractor interface: a function from page
// text and a result bound to (title, link) pairs. Callers only depend on the
// interface, so the matching strategy can be swapped without touching them.
//
// # Strategies
//
//   - RegexExtractor: pattern matching on the raw text. This is the reference
//     behavior and the default.
//   - HTMLExtractor: walks the DOM built by golang.org/x/net/html.
//   - JSONExtractor: reads a structured search-API response with gjson.
//
// # Pairing
//
// Titles and links are collected independently and paired by position: the
// i-th title goes with the i-th link. The result length is the smallest of
// the title count, the link count and the requested bound. Pages where the two
// lists drift out of step will pair mismatched entries; this is accepted for a
// best-effort scraper.
//
// Extractors never fail. Malformed or empty input yields fewer pairs or none.
package extract
