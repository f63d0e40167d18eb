// Package pipeline sequences extraction, cleaning, metadata,
// classification, naming and renaming for each file, and accumulates
// batch statistics. Files are independent: one file's failure never
// aborts the batch.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/feichai0017/file-renamer/config"
	"github.com/feichai0017/file-renamer/internal/classifier"
	"github.com/feichai0017/file-renamer/internal/cleaner"
	"github.com/feichai0017/file-renamer/internal/extract"
	"github.com/feichai0017/file-renamer/internal/metadata"
	"github.com/feichai0017/file-renamer/internal/models"
	"github.com/feichai0017/file-renamer/internal/naming"
	"github.com/feichai0017/file-renamer/internal/renamer"
	"github.com/feichai0017/file-renamer/internal/scanner"
	"github.com/feichai0017/file-renamer/pkg/logger"
)

// Pipeline wires the per-file stages together. All components are
// read-only after construction and safe to share across workers.
type Pipeline struct {
	cfg        *config.Config
	log        logger.Logger
	scanner    *scanner.Scanner
	extractor  *extract.Factory
	meta       *metadata.Extractor
	classifier classifier.Classifier
	generator  naming.Generator
	renamer    *renamer.Coordinator
	workers    int
}

// New builds a pipeline from configuration. Component selection errors
// (unknown classifier or generator type) are setup failures.
func New(cfg *config.Config, log logger.Logger, preview bool) (*Pipeline, error) {
	cls, err := classifier.New(cfg.Classifier)
	if err != nil {
		return nil, err
	}
	gen, err := naming.New(cfg.FilenameGenerator)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:       cfg,
		log:       log,
		scanner:   scanner.New(cfg.SupportedExtensions, cfg.Recursive()),
		extractor: extract.NewFactory(log),
		meta: metadata.New(
			cfg.DateFormat.Output,
			cfg.MaxKeywords(),
			cfg.FileDateFallback(),
		),
		classifier: cls,
		generator:  gen,
		renamer: renamer.New(
			renamer.Strategy(cfg.ConflictResolution.Strategy),
			renamer.WithPreview(preview),
		),
		workers: cfg.Processing.Workers,
	}, nil
}

// ProcessFolder runs the pipeline over every supported file under folder.
// Scan failures abort the run; per-file failures are counted and the
// batch continues.
func (p *Pipeline) ProcessFolder(ctx context.Context, folder string) (*RunStats, error) {
	runID := uuid.NewString()
	log := p.log.With(logger.String("run_id", runID))

	log.Info("starting batch processing", logger.String("folder", folder))

	files, err := p.scanner.Scan(folder)
	if err != nil {
		return nil, err
	}
	log.Info("scan complete", logger.Int("files", len(files)))

	stats := &RunStats{Total: len(files)}

	if p.workers <= 1 {
		for _, path := range files {
			if ctx.Err() != nil {
				log.Warn("batch interrupted")
				break
			}
			p.processAndCount(log, path, stats)
		}
	} else {
		// Each file's whole pipeline is the unit of isolation; the rename
		// coordinator serializes its conflict probe per directory.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for _, path := range files {
			path := path
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				p.processAndCount(log, path, stats)
				return nil
			})
		}
		if err := g.Wait(); err != nil && err != context.Canceled {
			log.Warn("batch interrupted", logger.Error(err))
		}
	}

	total, success, failed, skipped := stats.Counts()
	log.Info("batch processing complete",
		logger.Int("total", total),
		logger.Int("success", success),
		logger.Int("failed", failed),
		logger.Int("skipped", skipped),
	)
	return stats, nil
}

func (p *Pipeline) processAndCount(log logger.Logger, path string, stats *RunStats) {
	outcome := p.processFile(log, path)
	switch outcome.Status {
	case models.StatusSuccess:
		stats.addSuccess()
	case models.StatusSkipped:
		stats.addSkipped()
	default:
		stats.addFailed()
	}
}

// ProcessFile runs one file through the full pipeline and returns its
// outcome. Never panics or propagates errors; every failure is captured
// in the outcome.
func (p *Pipeline) ProcessFile(path string) models.Outcome {
	return p.processFile(p.log, path)
}

func (p *Pipeline) processFile(log logger.Logger, path string) models.Outcome {
	original := filepath.Base(path)
	flog := log.With(logger.String("file", original))
	flog.Debug("processing file", logger.String("path", path))

	// 1. Extract raw text.
	rawText, err := p.extractor.ExtractText(path)
	if err != nil {
		flog.Error("text extraction failed", logger.Error(err))
		return models.FailedOutcome(original, err)
	}
	if rawText == "" {
		flog.Warn("no text extracted, skipping")
		return models.SkippedOutcome(original, models.ReasonEmptyText)
	}

	// 2. Clean.
	text := cleaner.Clean(rawText)
	if text == "" {
		flog.Warn("text empty after cleaning, skipping")
		return models.SkippedOutcome(original, models.ReasonEmptyText)
	}

	// 3. Metadata.
	md, err := p.meta.Extract(text, path)
	if err != nil {
		flog.Error("metadata extraction failed", logger.Error(err))
		return models.FailedOutcome(original, err)
	}

	// 4. Classify.
	cls := p.classifier.Classify(text)
	flog.Debug("classified",
		logger.String("document_type", cls.DocumentType),
		logger.Float64("confidence", cls.Confidence),
	)

	// 5. Generate name.
	newBase := p.generator.Generate(md, cls, original)

	// 6. Rename. Any failure leaves the original file untouched.
	newPath, err := p.renamer.Rename(path, newBase)
	if err != nil {
		flog.Error("rename failed", logger.Error(err))
		return models.FailedOutcome(original, fmt.Errorf("rename: %w", err))
	}

	newName := filepath.Base(newPath)
	flog.Info("renamed",
		logger.String("new", newName),
		logger.String("document_type", cls.DocumentType),
		logger.Float64("confidence", cls.Confidence),
	)
	return models.SuccessOutcome(original, newName, cls, md)
}
