package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/coolbeans/prazo/pkg/rules"
)

// Suggestion is an advisory classification of a raw notice text. Empty
// fields mean "no opinion".
type Suggestion struct {
	Act        string  `json:"act,omitempty"`
	Party      string  `json:"party,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Suggester is the narrow capability interface for the optional
// text-classification collaborator. Implementations must be safe for
// concurrent use; a nil suggestion with a nil error means no opinion.
type Suggester interface {
	Suggest(ctx context.Context, noticeText string) (*Suggestion, error)
}

// NopSuggester never has an opinion. It is the default for environments
// without the collaborator.
type NopSuggester struct{}

// Suggest always returns no suggestion.
func (NopSuggester) Suggest(ctx context.Context, noticeText string) (*Suggestion, error) {
	return nil, nil
}

// defaultSuggestTimeout bounds the advisory call; on expiry the
// computation proceeds with the caller-supplied fields.
const defaultSuggestTimeout = 3 * time.Second

// ComputeWithSuggestion consults the engine's suggester with the request's
// notice text before resolving rules, applying any suggested act or party
// type as an advisory override. On suggester error or timeout the
// computation proceeds with the caller-supplied inputs; the request itself
// is never mutated. The cfg parameter follows Compute.
func (e *Engine) ComputeWithSuggestion(ctx context.Context, req Request, cfg *rules.Config) (*Result, error) {
	var applied []string

	if req.NoticeText != "" {
		suggestCtx, cancel := context.WithTimeout(ctx, defaultSuggestTimeout)
		suggestion, err := e.suggester.Suggest(suggestCtx, req.NoticeText)
		cancel()

		if err == nil && suggestion != nil {
			if suggestion.Act != "" && suggestion.Act != req.Act {
				req.Act = suggestion.Act
				applied = append(applied, fmt.Sprintf(
					"ato sugerido pela análise do texto: %q (confiança %.0f%%)",
					suggestion.Act, suggestion.Confidence*100))
			}
			if suggestion.Party != "" && suggestion.Party != req.Party {
				req.Party = suggestion.Party
				applied = append(applied, fmt.Sprintf(
					"parte sugerida pela análise do texto: %q (confiança %.0f%%)",
					suggestion.Party, suggestion.Confidence*100))
			}
		}
	}

	result, err := e.Compute(req, cfg)
	if err != nil {
		return nil, err
	}
	result.Observations = append(result.Observations, applied...)
	return result, nil
}
