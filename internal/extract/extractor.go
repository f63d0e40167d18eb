// Package extract reads raw text out of supported document formats.
// Extractors are registered in a factory keyed by file extension, the way
// the document types a batch can contain are decided in one place.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/feichai0017/file-renamer/pkg/logger"
)

// ErrUnsupportedExtension reports a file type no extractor handles.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Extractor reads the text content of one file format. An empty string
// with a nil error means the file had no extractable text, which is a
// skip, not a failure.
type Extractor interface {
	Extract(path string) (string, error)
}

// Factory routes extraction to the registered extractor for a file's
// extension.
type Factory struct {
	extractors map[string]Extractor
	logger     logger.Logger
}

// NewFactory registers the built-in extractors.
func NewFactory(log logger.Logger) *Factory {
	return &Factory{
		extractors: map[string]Extractor{
			".txt":  &TXTExtractor{},
			".pdf":  NewPDFExtractor(log),
			".docx": &DOCXExtractor{},
			".xlsx": &XLSXExtractor{},
		},
		logger: log,
	}
}

// ExtractText extracts raw text from the file at path. Missing files and
// unsupported extensions are errors; empty content is not.
func (f *Factory) ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := f.extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedExtension, ext)
	}

	text, err := extractor.Extract(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}
