package search

import (
	"fmt"

	"github.com/nao1215/tripscout/internal/model"
)

// FallbackPolicy decides what replaces the results of a failed search.
// Returning a nil slice means the failure is not recovered.
type FallbackPolicy func(err error) []model.Suggestion

// sentinelTitlePrefix starts the title of the placeholder suggestion.
const sentinelTitlePrefix = "Unable to fetch search results: "

// SentinelFallback replaces any failure with exactly one placeholder
// suggestion. Its title explains the failure and its link is empty.
func SentinelFallback(err error) []model.Suggestion {
	return []model.Suggestion{
		model.NewSuggestion(fmt.Sprintf("%s%v", sentinelTitlePrefix, err), ""),
	}
}

// NoFallback leaves failures unrecovered.
func NoFallback(error) []model.Suggestion {
	return nil
}

// Recover applies policy when err is non-nil.
//
// On success the suggestions are returned unchanged. On failure, if the
// policy yields a replacement, the replacement is returned with a nil error;
// otherwise the original error is returned.
func Recover(suggestions []model.Suggestion, err error, policy FallbackPolicy) ([]model.Suggestion, error) {
	if err == nil {
		return suggestions, nil
	}
	if policy == nil {
		return nil, err
	}
	replacement := policy(err)
	if replacement == nil {
		return nil, err
	}
	return replacement, nil
}
