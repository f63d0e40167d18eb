// Package cleaner normalizes raw extracted text before classification and
// metadata extraction.
package cleaner

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	spaceRuns   = regexp.MustCompile(` +`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// Clean strips non-printable characters, normalizes whitespace and line
// endings, and trims the result. It is deterministic and total: any input
// string yields a defined output.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = removeNonPrintable(text)

	// Collapse space runs first, then widen tabs; matches the reference
	// cleaner's ordering.
	text = spaceRuns.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\t", " ")

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = newlineRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

func removeNonPrintable(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
