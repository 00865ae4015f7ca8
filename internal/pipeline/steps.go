package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/tripscout/internal/model"
	"github.com/nao1215/tripscout/internal/search"
)

// ErrEmptyQuery is returned by SearchStep when the plan has no query.
var ErrEmptyQuery = errors.New("trip plan has an empty search query")

// Searcher fetches suggestions for a free-text query.
// *search.Client implements it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Suggestion, error)
}

// TripSaver persists a trip with its suggestions and returns the trip id.
// *database.TripDB implements it.
type TripSaver interface {
	AddTrip(ctx context.Context, destination, startDate, endDate string, suggestions []model.Suggestion) (int64, error)
}

// SearchStep fills plan.Suggestions from a Searcher.
// A failed search is handed to the fallback policy; when the policy
// recovers it, the original error is kept in plan.SearchError.
type SearchStep struct {
	searcher Searcher
	fallback search.FallbackPolicy
	logger   *slog.Logger
}

// NewSearchStep creates a search step. A nil fallback disables recovery.
func NewSearchStep(searcher Searcher, fallback search.FallbackPolicy, logger *slog.Logger) *SearchStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchStep{
		searcher: searcher,
		fallback: fallback,
		logger:   logger,
	}
}

// Name returns the step name.
func (s *SearchStep) Name() string {
	return "search"
}

// Do executes the search step.
func (s *SearchStep) Do(ctx context.Context, plan *model.TripPlan) error {
	if plan.Query == "" {
		return ErrEmptyQuery
	}

	suggestions, searchErr := s.searcher.Search(ctx, plan.Query)
	recovered, err := search.Recover(suggestions, searchErr, s.fallback)
	if err != nil {
		return fmt.Errorf("search %q: %w", plan.Query, err)
	}

	if searchErr != nil {
		s.logger.Warn("search failed, using fallback suggestion",
			"query", plan.Query,
			"error", searchErr,
		)
		plan.SearchError = searchErr
	}

	if recovered == nil {
		recovered = make([]model.Suggestion, 0)
	}
	plan.Suggestions = recovered
	return nil
}

// SaveStep stores the plan as a trip and records the assigned id.
type SaveStep struct {
	saver TripSaver
}

// NewSaveStep creates a save step.
func NewSaveStep(saver TripSaver) *SaveStep {
	return &SaveStep{saver: saver}
}

// Name returns the step name.
func (s *SaveStep) Name() string {
	return "save"
}

// Do executes the save step.
func (s *SaveStep) Do(ctx context.Context, plan *model.TripPlan) error {
	id, err := s.saver.AddTrip(ctx, plan.Destination, plan.StartDate, plan.EndDate, plan.Suggestions)
	if err != nil {
		return fmt.Errorf("save trip to %s: %w", plan.Destination, err)
	}
	plan.TripID = id
	return nil
}

// DefaultPipeline returns the search-then-save pipeline used by the CLI.
func DefaultPipeline(searcher Searcher, saver TripSaver, fallback search.FallbackPolicy, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := New(WithLogger(logger))
	p.AddSteps(
		NewSearchStep(searcher, fallback, logger),
		NewSaveStep(saver),
	)
	return p
}
