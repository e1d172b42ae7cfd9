package summarizer

import (
	"fmt"
	"strings"

	"text-summarizer/internal/domain"
)

type lengthPreset struct {
	instruction     string
	maxOutputTokens int64
}

var lengthPresets = map[domain.SummaryLength]lengthPreset{
	domain.SummaryLengthShort: {
		instruction:     "Provide a brief 2-3 sentence summary highlighting only the most critical points.",
		maxOutputTokens: 200,
	},
	domain.SummaryLengthMedium: {
		instruction:     "Create a balanced summary in 1-2 paragraphs covering the main points and key details.",
		maxOutputTokens: 500,
	},
	domain.SummaryLengthDetailed: {
		instruction: "Generate a comprehensive summary that covers all important aspects, " +
			"organized into clear paragraphs.",
		maxOutputTokens: 1000,
	},
}

func presetFor(length domain.SummaryLength) (lengthPreset, error) {
	preset, ok := lengthPresets[length]
	if !ok {
		return lengthPreset{}, fmt.Errorf("unknown summary length: %q", length)
	}

	return preset, nil
}

func buildUserPrompt(text string, preset lengthPreset) string {
	b := strings.Builder{}
	b.WriteString("Please summarize the following text:\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(preset.instruction)
	b.WriteString("\n\n")
	b.WriteString("Focus on the main arguments, key facts, and important conclusions. ")
	b.WriteString("Make the summary clear and well-structured.")

	return b.String()
}
