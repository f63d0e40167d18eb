// Package metadata pulls dates, entities and keywords out of cleaned
// document text using ordered pattern heuristics. Pattern order is
// load-bearing: the first successful match wins, and reordering changes
// output.
package metadata

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/feichai0017/file-renamer/internal/models"
)

// Extractor scans text for metadata fields. All pattern and parse misses
// are recoverable: they withhold the field rather than failing. The only
// hard failure is a file-stat error during the mtime fallback.
type Extractor struct {
	dateLayout       string
	maxKeywords      int
	fileDateFallback bool
}

// New builds an extractor. dateLayout is a Go reference-time layout used
// for all formatted dates.
func New(dateLayout string, maxKeywords int, fileDateFallback bool) *Extractor {
	return &Extractor{
		dateLayout:       dateLayout,
		maxKeywords:      maxKeywords,
		fileDateFallback: fileDateFallback,
	}
}

// Extract collects all metadata from text. sourcePath may be empty; when
// set it enables the file-modified-date fallback.
func (e *Extractor) Extract(text, sourcePath string) (models.Metadata, error) {
	md := models.Metadata{}

	dates := e.ExtractDates(text)
	if len(dates) > 0 {
		md.Date = dates[0]
	} else if e.fileDateFallback && sourcePath != "" {
		info, err := os.Stat(sourcePath)
		if err != nil {
			return models.Metadata{}, fmt.Errorf("can't stat source file for date fallback: %w", err)
		}
		md.Date = info.ModTime().Format(e.dateLayout)
		md.FileModifiedDate = md.Date
	}

	md.OrganizationName, md.PersonName = extractEntities(text)
	md.Keywords = e.ExtractKeywords(text)

	return md, nil
}

// --- dates ---

// datePattern pairs a regexp with the parser for its match shape.
type datePattern struct {
	re    *regexp.Regexp
	parse func(match []string) (time.Time, bool)
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Ordered list of date shapes. Numeric D/M/Y-style first, then Y/M/D,
// then the two textual forms.
var datePatterns = []datePattern{
	{
		re:    regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
		parse: parseNumericDate,
	},
	{
		re:    regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`),
		parse: parseYearFirstDate,
	},
	{
		re:    regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)([a-z]*)\.? (\d{1,2}),? (\d{4})\b`),
		parse: parseMonthDayYear,
	},
	{
		re:    regexp.MustCompile(`(?i)\b(\d{1,2}) (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)([a-z]*) (\d{4})\b`),
		parse: parseDayMonthYear,
	},
}

// ExtractDates returns every parseable date in text, formatted with the
// configured layout, de-duplicated, in pattern-then-scan order.
// Unparseable matches are heuristic false positives and are dropped
// silently.
func (e *Extractor) ExtractDates(text string) []string {
	var dates []string
	seen := make(map[string]bool)

	for _, p := range datePatterns {
		for _, match := range p.re.FindAllStringSubmatch(text, -1) {
			t, ok := p.parse(match)
			if !ok {
				continue
			}
			formatted := t.Format(e.dateLayout)
			if !seen[formatted] {
				seen[formatted] = true
				dates = append(dates, formatted)
			}
		}
	}
	return dates
}

// parseNumericDate handles D/M/Y-style numerics. Ambiguous values read
// month-first; if the first field can't be a month and the second can,
// the fields swap.
func parseNumericDate(match []string) (time.Time, bool) {
	a, _ := strconv.Atoi(match[1])
	b, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	year = expandYear(year, len(match[3]))

	month, day := a, b
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	return makeDate(year, month, day)
}

func parseYearFirstDate(match []string) (time.Time, bool) {
	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])
	return makeDate(year, month, day)
}

func parseMonthDayYear(match []string) (time.Time, bool) {
	month, ok := monthFromWord(match[1], match[2])
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(match[3])
	year, _ := strconv.Atoi(match[4])
	return makeDate(year, int(month), day)
}

func parseDayMonthYear(match []string) (time.Time, bool) {
	day, _ := strconv.Atoi(match[1])
	month, ok := monthFromWord(match[2], match[3])
	if !ok {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(match[4])
	return makeDate(year, int(month), day)
}

// monthFromWord resolves a month from its 3-letter prefix plus any tail
// the pattern swallowed. A tail that isn't part of the real month name
// ("Janq") makes the whole match a false positive.
func monthFromWord(prefix, tail string) (time.Month, bool) {
	month, ok := monthsByPrefix[strings.ToLower(prefix)]
	if !ok {
		return 0, false
	}
	word := strings.ToLower(prefix + tail)
	full := strings.ToLower(month.String())
	if !strings.HasPrefix(full, word) {
		return 0, false
	}
	return month, true
}

// expandYear maps 2-digit years onto 1969-2068.
func expandYear(year, digits int) int {
	if digits >= 3 {
		return year
	}
	if year < 69 {
		return 2000 + year
	}
	return 1900 + year
}

// makeDate validates the calendar date; time.Date normalizes out-of-range
// components, so a changed day or month means the input was invalid.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// --- entities ---

// Organization patterns: trigger word adjacent to a capitalized phrase.
// Evaluated in order; first hit wins.
var orgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Company|Corporation|Corp|Inc|Ltd|LLC|Organization)[\s:]+([A-Z][A-Za-z\s&]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`([A-Z][A-Za-z\s&]+?)\s+(?:Company|Corporation|Corp|Inc|Ltd|LLC)`),
}

/// Person patterns: labeled name fields or honorifics followed by a
// two-token capitalized name.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:Name|Employee|Client|Customer)[\s:]+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`\b(?:Mr|Ms|Mrs|Dr)\.\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
}

func extractEntities(text string) (org, person string) {
	for _, re := range orgPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			org = strings.TrimSpace(m[1])
			break
		}
	}
	for _, re := range personPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			person = strings.TrimSpace(m[1])
			break
		}
	}
	return org, person
}

// --- keywords ---

var wordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true, "by": true, "from": true, "as": true,
	"is": true, "was": true, "are": true, "were": true, "been": true,
	"be": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "this": true, "that": true,
	"these": true, "those": true, "i": true, "you": true, "he": true,
	"she": true, "it": true, "we": true, "they": true,
}

// ExtractKeywords returns the top-N words of length >= 4 by descending
// frequency, excluding stop words. Ties keep first-occurrence order.
func (e *Extractor) ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	type entry struct {
		word  string
		count int
		first int
	}
	counts := make(map[string]*entry)
	var order []*entry

	for i, word := range words {
		if stopWords[word] {
			continue
		}
		if ent, ok := counts[word]; ok {
			ent.count++
		} else {
			ent := &entry{word: word, count: 1, first: i}
			counts[word] = ent
			order = append(order, ent)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	n := e.maxKeywords
	if n > len(order) {
		n = len(order)
	}
	keywords := make([]string, 0, n)
	for _, ent := range order[:n] {
		keywords = append(keywords, ent.word)
	}
	return keywords
}
