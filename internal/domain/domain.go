package domain

const (
	ServiceName = "text-summarizer"

	// MinContentChars is the shortest content, in runes, worth summarizing.
	MinContentChars = 50
)

type InputType string

const (
	InputTypeText InputType = "text"
	InputTypeURL  InputType = "url"

	DefaultInputType = InputTypeText
)

func (t InputType) Valid() bool {
	switch t {
	case InputTypeText, InputTypeURL:
		return true
	default:
		return false
	}
}

type SummaryLength string

const (
	SummaryLengthShort    SummaryLength = "short"
	SummaryLengthMedium   SummaryLength = "medium"
	SummaryLengthDetailed SummaryLength = "detailed"

	DefaultSummaryLength = SummaryLengthMedium
)

func (l SummaryLength) Valid() bool {
	switch l {
	case SummaryLengthShort, SummaryLengthMedium, SummaryLengthDetailed:
		return true
	default:
		return false
	}
}

type SummaryRequest struct {
	InputText     string        `json:"input_text"`
	InputType     InputType     `json:"input_type"`
	SummaryLength SummaryLength `json:"summary_length"`
}

type SummaryResult struct {
	Summary           string
	WordCountOriginal int
	WordCountSummary  int
}

type SummaryResponse struct {
	InputText         string        `json:"input_text"`
	InputType         InputType     `json:"input_type"`
	Summary           string        `json:"summary"`
	SummaryLength     SummaryLength `json:"summary_length"`
	WordCountOriginal int           `json:"word_count_original"`
	WordCountSummary  int           `json:"word_count_summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
