// Package classifier assigns a document type and confidence to cleaned
// text. The rule-based implementation is the reference; the Classifier
// interface leaves room for ML or LLM variants selected by configuration.
package classifier

import (
	"fmt"

	"github.com/feichai0017/file-renamer/config"
	"github.com/feichai0017/file-renamer/internal/models"
)

// Classifier maps cleaned text to a classification result. Implementations
// must be pure functions of the text and their static rule state, safe for
// concurrent use.
type Classifier interface {
	Classify(text string) models.ClassificationResult
}

// New selects a classifier implementation from configuration.
func New(cfg config.ClassifierConfig) (Classifier, error) {
	switch cfg.Type {
	case "rule_based":
		return NewRuleBased(cfg.Threshold()), nil
	default:
		return nil, fmt.Errorf("unknown classifier type: %s", cfg.Type)
	}
}
