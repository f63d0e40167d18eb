// Package config loads and validates the renamer's YAML configuration.
// A .env file (or plain environment variables) can override a few
// operational knobs without editing the config file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration document.
type Config struct {
	SupportedExtensions []string          `yaml:"supported_extensions"`
	Classifier          ClassifierConfig  `yaml:"classifier"`
	FilenameGenerator   GeneratorConfig   `yaml:"filename_generator"`
	Metadata            MetadataConfig    `yaml:"metadata"`
	DateFormat          DateFormatConfig  `yaml:"date_format"`
	ConflictResolution  ConflictConfig    `yaml:"conflict_resolution"`
	ScanOptions         ScanConfig        `yaml:"scan_options"`
	Processing          ProcessingConfig  `yaml:"processing"`
	Logging             LoggingConfig     `yaml:"logging"`
}

type ClassifierConfig struct {
	Type string `yaml:"type"`
	// ConfidenceThreshold is a pointer so an explicit zero survives
	// defaulting.
	ConfidenceThreshold *float64 `yaml:"confidence_threshold"`
}

// Threshold returns the configured confidence threshold, or 0.5 when
// unset.
func (c ClassifierConfig) Threshold() float64 {
	if c.ConfidenceThreshold == nil {
		return 0.5
	}
	return *c.ConfidenceThreshold
}

type GeneratorConfig struct {
	Type      string            `yaml:"type"`
	MaxLength int               `yaml:"max_length"`
	Templates map[string]string `yaml:"templates"`
}

type MetadataConfig struct {
	// MaxKeywords is a pointer so an explicit zero survives defaulting.
	MaxKeywords         *int  `yaml:"max_keywords"`
	UseFileDateFallback *bool `yaml:"use_file_date_fallback"`
}

type DateFormatConfig struct {
	// Output is a Go reference-time layout, e.g. "2006-01-02".
	Output string `yaml:"output"`
}

type ConflictConfig struct {
	Strategy string `yaml:"strategy"`
}

type ScanConfig struct {
	Recursive *bool `yaml:"recursive"`
}

type ProcessingConfig struct {
	// Workers bounds how many files are pipelined concurrently.
	// 1 keeps strictly sequential processing.
	Workers int `yaml:"workers"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

var validClassifierTypes = map[string]bool{
	"rule_based": true,
}

var validGeneratorTypes = map[string]bool{
	"template": true,
}

var validConflictStrategies = map[string]bool{
	"version":   true,
	"timestamp": true,
	"hash":      true,
}

// Load reads, validates and defaults the configuration at path. A missing
// or malformed file is a fatal setup failure surfaced to the caller.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("can't parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a ready-to-use configuration matching the shipped
// config.yaml.
func Default() *Config {
	cfg := &Config{
		SupportedExtensions: []string{".pdf", ".txt", ".docx", ".xlsx"},
		Classifier:          ClassifierConfig{Type: "rule_based"},
		FilenameGenerator:   GeneratorConfig{Type: "template", MaxLength: 150},
		DateFormat:          DateFormatConfig{Output: "2006-01-02"},
		ConflictResolution:  ConflictConfig{Strategy: "version"},
		Processing:          ProcessingConfig{Workers: 1},
		Logging: LoggingConfig{
			Level:      "info",
			Encoding:   "console",
			File:       "logs/file_renamer.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.SupportedExtensions) == 0 {
		c.SupportedExtensions = []string{".pdf", ".txt", ".docx", ".xlsx"}
	}
	for i, ext := range c.SupportedExtensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.SupportedExtensions[i] = ext
	}

	if c.Classifier.Type == "" {
		c.Classifier.Type = "rule_based"
	}
	if c.Classifier.ConfidenceThreshold == nil {
		v := 0.5
		c.Classifier.ConfidenceThreshold = &v
	}

	if c.FilenameGenerator.Type == "" {
		c.FilenameGenerator.Type = "template"
	}
	if c.FilenameGenerator.MaxLength == 0 {
		c.FilenameGenerator.MaxLength = 150
	}

	if c.Metadata.MaxKeywords == nil {
		n := 3
		c.Metadata.MaxKeywords = &n
	}
	if c.Metadata.UseFileDateFallback == nil {
		t := true
		c.Metadata.UseFileDateFallback = &t
	}

	if c.DateFormat.Output == "" {
		c.DateFormat.Output = "2006-01-02"
	}

	if c.ConflictResolution.Strategy == "" {
		c.ConflictResolution.Strategy = "version"
	}

	if c.ScanOptions.Recursive == nil {
		t := true
		c.ScanOptions.Recursive = &t
	}

	if c.Processing.Workers == 0 {
		c.Processing.Workers = 1
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Encoding == "" {
		c.Logging.Encoding = "console"
	}
	if c.Logging.File == "" {
		c.Logging.File = "logs/file_renamer.log"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 100
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 7
	}
}

// applyEnvOverrides lets a .env file or environment variables override
// operational settings. Missing .env is not an error.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if v := os.Getenv("RENAMER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RENAMER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Processing.Workers = n
		}
	}
	if v := os.Getenv("RENAMER_CONFLICT_STRATEGY"); v != "" {
		c.ConflictResolution.Strategy = v
	}
}

func (c *Config) validate() error {
	if !validClassifierTypes[c.Classifier.Type] {
		return fmt.Errorf("invalid classifier type: %s", c.Classifier.Type)
	}
	if !validGeneratorTypes[c.FilenameGenerator.Type] {
		return fmt.Errorf("invalid filename generator type: %s", c.FilenameGenerator.Type)
	}
	if !validConflictStrategies[c.ConflictResolution.Strategy] {
		return fmt.Errorf("invalid conflict resolution strategy: %s", c.ConflictResolution.Strategy)
	}
	if t := c.Classifier.Threshold(); t < 0 || t > 1 {
		return fmt.Errorf("confidence_threshold must be in [0,1], got %v", t)
	}
	if c.FilenameGenerator.MaxLength < 10 {
		return fmt.Errorf("max_length too small: %d", c.FilenameGenerator.MaxLength)
	}
	if c.Processing.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Processing.Workers)
	}
	return nil
}

// Recursive reports whether folder scanning descends into subdirectories.
func (c *Config) Recursive() bool {
	return c.ScanOptions.Recursive == nil || *c.ScanOptions.Recursive
}

// FileDateFallback reports whether the file's mtime substitutes for a
// missing document date.
func (c *Config) FileDateFallback() bool {
	return c.Metadata.UseFileDateFallback == nil || *c.Metadata.UseFileDateFallback
}

// MaxKeywords returns the configured keyword cap, or 3 when unset.
func (c *Config) MaxKeywords() int {
	if c.Metadata.MaxKeywords == nil {
		return 3
	}
	return *c.Metadata.MaxKeywords
}
