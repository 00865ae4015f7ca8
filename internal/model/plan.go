package model

// TripPlan is the state passed through the pipeline steps.
// The search step fills Suggestions, the save step fills TripID.
type TripPlan struct {
	// Query is the free-text search sent to the search endpoint.
	Query string `json:"query"`

	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	// Suggestions holds the search results, or the single placeholder
	// when the request failed and the fallback policy is active.
	Suggestions []Suggestion `json:"suggestions"`

	// SearchError is the fetch failure recovered by the fallback policy, if any.
	SearchError error `json:"-"`

	// TripID is set once the plan has been stored.
	TripID int64 `json:"trip_id,omitempty"`

	// PerformedSteps lists the names of steps that ran, in order.
	PerformedSteps []string `json:"performed_steps"`
}

// NewTripPlan creates a TripPlan for the given query and trip fields.
func NewTripPlan(query, destination, startDate, endDate string) *TripPlan {
	return &TripPlan{
		Query:          query,
		Destination:    destination,
		StartDate:      startDate,
		EndDate:        endDate,
		Suggestions:    make([]Suggestion, 0),
		PerformedSteps: make([]string, 0),
	}
}

// Degraded reports whether the suggestions came from the fallback policy.
func (p *TripPlan) Degraded() bool {
	return p.SearchError != nil
}

// Trip returns the plan as a Trip value.
func (p *TripPlan) Trip() Trip {
	suggestions := make([]Suggestion, len(p.Suggestions))
	copy(suggestions, p.Suggestions)
	return Trip{
		ID:          p.TripID,
		Destination: p.Destination,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Suggestions: suggestions,
	}
}
