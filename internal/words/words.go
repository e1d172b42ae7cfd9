package words

import "strings"

// Count returns the number of whitespace-delimited words in text.
func Count(text string) int {
	return len(strings.Fields(text))
}
