// Package report renders stored trips for output.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain console listing, one line per trip followed by
//     one indented line per suggestion
//   - MarkdownWriter: a Markdown document for sharing
//   - JSONWriter: structured JSON output for tool integration
//
// Design decision: report writing is separate from the trip data structures
// in the model package, so new output formats do not touch the model.
package report
