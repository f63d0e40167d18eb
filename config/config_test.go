package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
classifier:
  type: rule_based
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf", ".txt", ".docx", ".xlsx"}, cfg.SupportedExtensions)
	assert.Equal(t, 0.5, cfg.Classifier.Threshold())
	assert.Equal(t, "template", cfg.FilenameGenerator.Type)
	assert.Equal(t, 150, cfg.FilenameGenerator.MaxLength)
	assert.Equal(t, 3, cfg.MaxKeywords())
	assert.True(t, cfg.FileDateFallback())
	assert.Equal(t, "2006-01-02", cfg.DateFormat.Output)
	assert.Equal(t, "version", cfg.ConflictResolution.Strategy)
	assert.True(t, cfg.Recursive())
	assert.Equal(t, 1, cfg.Processing.Workers)
}

func TestLoadNormalizesExtensions(t *testing.T) {
	path := writeConfig(t, `
supported_extensions: [PDF, .Txt]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".pdf", ".txt"}, cfg.SupportedExtensions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "supported_extensions: [unclosed")

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoadRejectsInvalidEnums(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"classifier type", "classifier:\n  type: llm\n"},
		{"generator type", "filename_generator:\n  type: summarization\n"},
		{"conflict strategy", "conflict_resolution:\n  strategy: overwrite\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadExplicitFalseFlagsSurvive(t *testing.T) {
	path := writeConfig(t, `
metadata:
  use_file_date_fallback: false
scan_options:
  recursive: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.FileDateFallback())
	assert.False(t, cfg.Recursive())
}

func TestLoadExplicitZeroValuesSurvive(t *testing.T) {
	path := writeConfig(t, `
classifier:
  confidence_threshold: 0
metadata:
  max_keywords: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Classifier.Threshold())
	assert.Equal(t, 0, cfg.MaxKeywords())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RENAMER_LOG_LEVEL", "debug")
	t.Setenv("RENAMER_WORKERS", "4")

	cfg, err := Load(writeConfig(t, "classifier:\n  type: rule_based\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Processing.Workers)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "rule_based", cfg.Classifier.Type)
	assert.NoError(t, cfg.validate())
}
