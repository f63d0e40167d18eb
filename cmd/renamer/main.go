package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/feichai0017/file-renamer/config"
	"github.com/feichai0017/file-renamer/internal/pipeline"
	"github.com/feichai0017/file-renamer/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	preview := flag.Bool("preview", false, "compute new names without renaming files")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	nonRecursive := flag.Bool("non-recursive", false, "do not scan subdirectories")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <folder>\n\nRename documents based on their text content.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	folder := flag.Arg(0)

	info, err := os.Stat(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: folder not found: %s\n", folder)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: not a directory: %s\n", folder)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *nonRecursive {
		f := false
		cfg.ScanOptions.Recursive = &f
	}

	level := cfg.Logging.Level
	if *verbose {
		level = "debug"
	}
	log, err := logger.NewLogger(
		logger.WithLevel(level),
		logger.WithEncoding(cfg.Logging.Encoding),
		logger.WithOutputPaths([]string{"stdout", cfg.Logging.File}),
		logger.WithRotation(cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	p, err := pipeline.New(cfg, log, *preview)
	if err != nil {
		log.Error("failed to initialize pipeline", logger.Error(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *preview {
		fmt.Println("=== PREVIEW MODE (no files will be renamed) ===")
	}

	stats, err := p.ProcessFolder(ctx, folder)
	if err != nil {
		log.Error("batch processing failed", logger.Error(err))
		os.Exit(1)
	}

	total, success, failed, skipped := stats.Counts()
	fmt.Println()
	fmt.Println("=== PROCESSING COMPLETE ===")
	fmt.Printf("Total files:          %d\n", total)
	fmt.Printf("Successfully renamed: %d\n", success)
	fmt.Printf("Failed:               %d\n", failed)
	fmt.Printf("Skipped:              %d\n", skipped)
	fmt.Printf("\nCheck log file for details: %s\n", cfg.Logging.File)
}
