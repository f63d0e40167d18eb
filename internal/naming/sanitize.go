package naming

import (
	"regexp"
	"strings"
)

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// Sanitize makes a generated name filesystem-safe: invalid characters are
// stripped, spaces become underscores, underscore runs collapse, and
// leading/trailing underscores and dots are trimmed. Sanitizing an
// already-sanitized name is a no-op.
func Sanitize(name string) string {
	name = invalidChars.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, " ", "_")
	name = underscoreRuns.ReplaceAllString(name, "_")
	return strings.Trim(name, "_.")
}
