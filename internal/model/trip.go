package model

// Trip is a stored destination and date range together with
// the suggestions attached to it when it was created.
//
// Dates are kept as plain text exactly as the caller supplied them.
// No calendar validation is applied.
type Trip struct {
	// ID is the store-assigned identifier. Zero means the trip is not stored yet.
	ID int64 `json:"id"`

	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	// Suggestions are ordered by insertion.
	Suggestions []Suggestion `json:"suggestions"`
}

// NewTrip creates an unsaved Trip with an empty, non-nil suggestion list.
func NewTrip(destination, startDate, endDate string) *Trip {
	return &Trip{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Suggestions: make([]Suggestion, 0),
	}
}
