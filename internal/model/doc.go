// Package model defines the core data structures used throughout tripscout.
//
// This package contains the following main types:
//   - Suggestion: A scraped (title, link) candidate for a travel query
//   - Trip: A stored destination and date range with its suggestions
//   - SuggestionRecord: A suggestion row as persisted by the store
//   - TripPlan: The state carried through the demo pipeline
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The extract, search, database, pipeline and report packages all
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
