package summarizer

import (
	"context"

	"text-summarizer/internal/domain"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the resolved plain text to summarise.
	Text string
	// Length selects the verbosity preset.
	Length domain.SummaryLength
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}
