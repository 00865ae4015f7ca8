package model

// Suggestion is a single search result candidate for a travel query.
// It has no identity of its own until a store attaches it to a trip.
type Suggestion struct {
	// Title is the plain-text result title. Markup is stripped by the extractor.
	Title string `json:"title"`

	// Link is the decoded target URL. The fallback placeholder leaves it empty.
	Link string `json:"link"`
}

// NewSuggestion creates a Suggestion from a title and link.
func NewSuggestion(title, link string) Suggestion {
	return Suggestion{Title: title, Link: link}
}

// IsPlaceholder reports whether the suggestion carries no link.
// Placeholders are produced when the search request could not be completed.
func (s Suggestion) IsPlaceholder() bool {
	return s.Link == ""
}

// SuggestionRecord is a suggestion as stored in the database,
// including the identifiers assigned by the store.
type SuggestionRecord struct {
	// ID is the store-assigned identifier, increasing in insertion order.
	ID int64 `json:"id"`

	// TripID references the owning trip.
	TripID int64 `json:"trip_id"`

	Title string `json:"title"`
	Link  string `json:"link"`
}

// Suggestion returns the record without its identifiers.
func (r SuggestionRecord) Suggestion() Suggestion {
	return Suggestion{Title: r.Title, Link: r.Link}
}
