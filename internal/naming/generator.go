// Package naming turns metadata and a classification into a sanitized
// base filename. Generation never fails: every degraded path still yields
// a usable name.
package naming

import (
	"fmt"

	"github.com/feichai0017/file-renamer/config"
	"github.com/feichai0017/file-renamer/internal/models"
)

// Generator produces a sanitized base name (no extension) for a document.
// Implementations are selected by configuration; the template generator is
// the reference.
type Generator interface {
	Generate(md models.Metadata, cls models.ClassificationResult, originalFilename string) string
}

// New selects a generator implementation from configuration.
func New(cfg config.GeneratorConfig) (Generator, error) {
	switch cfg.Type {
	case "template":
		return NewTemplateGenerator(cfg.Templates, cfg.MaxLength), nil
	default:
		return nil, fmt.Errorf("unknown filename generator type: %s", cfg.Type)
	}
}
