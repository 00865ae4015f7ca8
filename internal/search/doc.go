// Package search performs the outbound web search for a travel query.
//
// A Client issues one GET request to the configured endpoint with the query
// URL-encoded in the q parameter and a browser-like User-Agent header. The
// response body is decoded as UTF-8 and handed to an extract.Extractor.
//
// Failures are returned, not hidden: Search yields either suggestions or a
// *FetchError matching ErrFetchFailure. Callers that prefer the degraded
// behavior apply a FallbackPolicy through Recover; SentinelFallback replaces
// the failure with a single placeholder suggestion whose link is empty.
//
// # Usage
//
//	client, err := search.NewClient(search.WithTimeout(10 * time.Second))
//	suggestions, err := client.Search(ctx, "Madrid travel 26-28 September 2025")
//	suggestions, err = search.Recover(suggestions, err, search.SentinelFallback)
package search
