package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const fragmentSeparator = "  "

func documentText(doc *goquery.Document) string {
	doc.Find("script, style").Remove()

	return normalizeText(doc.Text())
}

// normalizeText strips every line, breaks lines on double spaces and joins the
// non-empty fragments with a single space.
func normalizeText(text string) string {
	var b strings.Builder

	for _, line := range splitLines(text) {
		for _, fragment := range strings.Split(strings.TrimSpace(line), fragmentSeparator) {
			fragment = strings.TrimSpace(fragment)
			if fragment == "" {
				continue
			}

			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fragment)
		}
	}

	return b.String()
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
