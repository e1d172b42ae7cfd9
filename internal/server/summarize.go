package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"text-summarizer/internal/domain"
	"text-summarizer/internal/extractor"
	"text-summarizer/internal/summarizer"
	"text-summarizer/internal/words"
)

const (
	msgInputTextRequired    = "Input text is required"
	msgInvalidInputType     = "Invalid input type"
	msgInvalidSummaryLength = "Invalid summary length"
	msgInsufficientContent  = "Could not extract sufficient content from URL"
	msgTooShort             = "Text is too short to summarize"
)

// Handler runs the summarize pipeline for one request at a time. It holds no
// per-request state and is safe for concurrent use.
type Handler struct {
	fetcher    extractor.ContentFetcher
	summarizer summarizer.Summarizer
	log        *slog.Logger
}

func NewHandler(
	fetcher extractor.ContentFetcher,
	s summarizer.Summarizer,
	log *slog.Logger,
) *Handler {
	return &Handler{
		fetcher:    fetcher,
		summarizer: s,
		log:        log,
	}
}

// Summarize validates req, resolves the content to summarize, generates the
// summary and counts words on both sides. req must already carry defaults for
// omitted fields. Errors are typed per domain.StatusCode.
func (h *Handler) Summarize(
	ctx context.Context,
	req domain.SummaryRequest,
) (domain.SummaryResponse, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	content, err := h.resolveContent(ctx, req)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	if utf8.RuneCountInString(strings.TrimSpace(content)) < domain.MinContentChars {
		return domain.SummaryResponse{}, domain.NewValidationError(msgTooShort)
	}

	result, err := h.generate(ctx, content, req.SummaryLength)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	return domain.SummaryResponse{
		InputText:         req.InputText,
		InputType:         req.InputType,
		Summary:           result.Summary,
		SummaryLength:     req.SummaryLength,
		WordCountOriginal: result.WordCountOriginal,
		WordCountSummary:  result.WordCountSummary,
	}, nil
}

func normalizeRequest(req domain.SummaryRequest) (domain.SummaryRequest, error) {
	req.InputText = strings.TrimSpace(req.InputText)
	if req.InputText == "" {
		return req, domain.NewValidationError(msgInputTextRequired)
	}

	if !req.InputType.Valid() {
		return req, domain.NewValidationError(msgInvalidInputType)
	}

	if !req.SummaryLength.Valid() {
		return req, domain.NewValidationError(msgInvalidSummaryLength)
	}

	return req, nil
}

func (h *Handler) resolveContent(
	ctx context.Context,
	req domain.SummaryRequest,
) (string, error) {
	if req.InputType != domain.InputTypeURL {
		return req.InputText, nil
	}

	text, err := h.fetcher.Extract(ctx, req.InputText)
	if err != nil {
		var extractionErr *domain.ExtractionError
		if !errors.As(err, &extractionErr) {
			err = &domain.ExtractionError{Err: err}
		}

		h.log.WarnContext(ctx, "Failed to extract content",
			"error", err,
			"url", req.InputText)

		return "", err
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < domain.MinContentChars {
		h.log.InfoContext(ctx, "Extracted content is insufficient",
			"url", req.InputText,
			"chars", utf8.RuneCountInString(text))

		return "", domain.NewValidationError(msgInsufficientContent)
	}

	return text, nil
}

func (h *Handler) generate(
	ctx context.Context,
	content string,
	length domain.SummaryLength,
) (domain.SummaryResult, error) {
	summary, err := h.summarizer.Summarize(ctx, summarizer.Input{
		Text:   content,
		Length: length,
	})
	if err != nil {
		var generationErr *domain.GenerationError
		if !errors.As(err, &generationErr) {
			err = &domain.GenerationError{Err: err}
		}

		h.log.ErrorContext(ctx, "Failed to generate summary",
			"error", err,
			"summaryLength", length,
			"contentChars", utf8.RuneCountInString(content))

		return domain.SummaryResult{}, err
	}

	return domain.SummaryResult{
		Summary:           summary,
		WordCountOriginal: words.Count(content),
		WordCountSummary:  words.Count(summary),
	}, nil
}
