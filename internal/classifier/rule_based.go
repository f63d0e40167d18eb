package classifier

import (
	"math"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/feichai0017/file-renamer/internal/models"
)

// RuleBased scores text against keyword rule profiles. Every profile's
// keywords are compiled into one shared Aho-Corasick automaton, so a
// single pass over the text yields the full hit set for all document
// types. The rule table and automaton are read-only after construction,
// so a single instance is safe to share.
type RuleBased struct {
	rules     []ruleEntry
	threshold float64
	matcher   *ahocorasick.Matcher
	profiles  []profileIndexes
}

// profileIndexes holds one profile's keyword positions in the shared
// automaton dictionary. A keyword appearing in several tiers or profiles
// maps to a single dictionary slot.
type profileIndexes struct {
	required []int
	strong   []int
	weak     []int
}

// NewRuleBased builds the reference classifier with the built-in rule
// table. Results whose winning score falls below threshold come back as
// Unknown with confidence 0.1.
func NewRuleBased(threshold float64) *RuleBased {
	c := &RuleBased{
		rules:     defaultRules,
		threshold: threshold,
	}

	var dictionary []string
	slots := make(map[string]int)
	indexAll := func(keywords []string) []int {
		out := make([]int, len(keywords))
		for i, kw := range keywords {
			slot, ok := slots[kw]
			if !ok {
				slot = len(dictionary)
				dictionary = append(dictionary, kw)
				slots[kw] = slot
			}
			out[i] = slot
		}
		return out
	}

	for _, entry := range c.rules {
		c.profiles = append(c.profiles, profileIndexes{
			required: indexAll(entry.profile.Required),
			strong:   indexAll(entry.profile.Strong),
			weak:     indexAll(entry.profile.Weak),
		})
	}
	c.matcher = ahocorasick.NewStringMatcher(dictionary)
	return c
}

// Classify scores every document type and returns the best. Ties resolve
// to the first type in declaration order; this is a deterministic
// tie-break, not a specificity judgment.
func (c *RuleBased) Classify(text string) models.ClassificationResult {
	if text == "" {
		return models.UnknownResult()
	}

	hits := c.matcher.Match([]byte(strings.ToLower(text)))
	hitSet := make(map[int]bool, len(hits))
	for _, h := range hits {
		hitSet[h] = true
	}

	bestType := ""
	bestScore := -1.0
	for i, entry := range c.rules {
		score := scoreProfile(hitSet, c.profiles[i])
		if score > bestScore {
			bestType = entry.docType
			bestScore = score
		}
	}

	if bestScore < c.threshold {
		return models.UnknownResult()
	}

	return models.ClassificationResult{
		DocumentType: bestType,
		Confidence:   math.Round(bestScore*100) / 100,
	}
}

// scoreProfile computes the tiered confidence score for one profile from
// the automaton's hit set.
func scoreProfile(hitSet map[int]bool, p profileIndexes) float64 {
	if countHits(hitSet, p.required) == 0 {
		return 0.0
	}

	strongMatches := countHits(hitSet, p.strong)
	weakMatches := countHits(hitSet, p.weak)

	var score float64
	switch {
	case strongMatches >= 3:
		score = 0.9
	case strongMatches >= 2:
		score = 0.7
	case strongMatches >= 1:
		score = 0.6
	default:
		score = 0.3
	}

	if weakMatches >= 2 {
		score = math.Min(1.0, score+0.1)
	}
	return score
}

func countHits(hitSet map[int]bool, slots []int) int {
	n := 0
	for _, slot := range slots {
		if hitSet[slot] {
			n++
		}
	}
	return n
}
