package naming

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feichai0017/file-renamer/config"
	"github.com/feichai0017/file-renamer/internal/models"
)

var testClock = func() time.Time {
	return time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
}

func newTestGenerator() *TemplateGenerator {
	g := NewTemplateGenerator(nil, 150)
	g.now = testClock
	return g
}

func cls(docType string) models.ClassificationResult {
	return models.ClassificationResult{DocumentType: docType, Confidence: 0.9}
}

func TestGenerateFillsTemplate(t *testing.T) {
	g := newTestGenerator()

	md := models.Metadata{
		OrganizationName: "Acme Corp",
		InvoiceNumber:    "INV-001",
		Date:             "2024-03-05",
	}

	got := g.Generate(md, cls("Invoice"), "scan001.pdf")

	assert.Equal(t, "Acme_Corp_Invoice_INV-001_2024-03-05", got)
}

func TestGenerateFallsBackOnMissingField(t *testing.T) {
	g := newTestGenerator()

	// Invoice template references {invoice_number}, which is absent, so
	// the whole name comes from fallback logic.
	md := models.Metadata{
		OrganizationName: "Acme Corp",
		Date:             "2024-03-05",
	}

	got := g.Generate(md, cls("Invoice"), "scan001.pdf")

	assert.Equal(t, "Invoice_Acme_Corp_2024-03-05", got)
}

func TestGenerateFallbackPrefersPersonWhenNoOrg(t *testing.T) {
	g := newTestGenerator()

	md := models.Metadata{
		PersonName: "Jane Doe",
		Date:       "2024-03-05",
	}

	got := g.Generate(md, cls("Invoice"), "scan001.pdf")

	assert.Equal(t, "Invoice_Jane_Doe_2024-03-05", got)
}

func TestGenerateFallbackUsesFileDate(t *testing.T) {
	g := newTestGenerator()

	md := models.Metadata{FileModifiedDate: "2023-06-15"}

	got := g.Generate(md, cls("Report"), "notes.txt")

	// No entity and no document date: file date plus the NoMetadata
	// marker.
	assert.Equal(t, "Report_2023-06-15_NoMetadata", got)
}

func TestGenerateFallbackNoMetadata(t *testing.T) {
	g := newTestGenerator()

	got := g.Generate(models.Metadata{}, cls("Unknown"), "scan001.pdf")

	assert.Equal(t, "Unknown_20240305_143000_NoMetadata", got)
}

func TestGenerateUsesDefaultTemplateForUnmappedType(t *testing.T) {
	g := newTestGenerator()

	md := models.Metadata{
		OrganizationName: "Acme",
		Date:             "2024-01-01",
	}

	got := g.Generate(md, cls("Memo"), "memo.txt")

	assert.Equal(t, "Memo_Acme_2024-01-01", got)
}

func TestGenerateLastResort(t *testing.T) {
	// A template that sanitizes away entirely forces the last-resort
	// name.
	g := NewTemplateGenerator(map[string]string{
		"Report":  "???",
		"default": "???",
	}, 150)
	g.now = testClock

	got := g.Generate(models.Metadata{}, cls("Report"), "quarterly.pdf")

	assert.Equal(t, "quarterly_20240305_143000", got)
}

func TestGenerateProperties(t *testing.T) {
	g := newTestGenerator()

	inputs := []struct {
		md       models.Metadata
		cls      models.ClassificationResult
		original string
	}{
		{models.Metadata{OrganizationName: "A<c>m:e / Inc", Date: "2024-01-01"}, cls("Contract"), "x.pdf"},
		{models.Metadata{PersonName: "Jane Doe", Date: "2024-01-01"}, cls("ID"), "id scan.pdf"},
		{models.Metadata{}, cls("Unknown"), "???.txt"},
		{models.Metadata{OrganizationName: strings.Repeat("Very Long Name ", 30)}, cls("Report"), "r.pdf"},
	}

	for _, in := range inputs {
		got := g.Generate(in.md, in.cls, in.original)

		require.NotEmpty(t, got)
		assert.NotContains(t, got, " ")
		for _, c := range `<>:"/\|?*` {
			assert.NotContains(t, got, string(c))
		}
		assert.LessOrEqual(t, len(got), 150)
		assert.False(t, strings.HasPrefix(got, "_"))
		assert.False(t, strings.HasSuffix(got, "_"))
		assert.False(t, strings.HasPrefix(got, "."))
		assert.False(t, strings.HasSuffix(got, "."))
	}
}

func TestGenerateTruncationKeepsBothEnds(t *testing.T) {
	g := NewTemplateGenerator(nil, 20)
	g.now = testClock

	md := models.Metadata{
		OrganizationName: strings.Repeat("LongCorporateName", 5),
		Date:             "2024-03-05",
	}

	got := g.Generate(md, cls("Contract"), "c.pdf")

	assert.LessOrEqual(t, len(got), 20)
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasPrefix(got, "Contract_"[:8]))
	assert.True(t, strings.HasSuffix(got, "2024-03-05"[len("2024-03-05")-8:]))
}

func TestGenerateTruncationKeepsValidUTF8(t *testing.T) {
	// A template with multi-byte literals must not be sliced mid-rune.
	g := NewTemplateGenerator(map[string]string{
		"Report": strings.Repeat("é", 30) + "_{date}",
	}, 20)
	g.now = testClock

	got := g.Generate(models.Metadata{Date: "2024-03-05"}, cls("Report"), "r.pdf")

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len([]rune(got)), 20)
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasPrefix(got, "éééé"))
	assert.True(t, strings.HasSuffix(got, "24-03-05"))
}

func TestNewGeneratorFactory(t *testing.T) {
	_, err := New(config.GeneratorConfig{Type: "llm"})
	require.Error(t, err)

	g, err := New(config.GeneratorConfig{Type: "template", MaxLength: 150})
	require.NoError(t, err)
	assert.NotNil(t, g)
}
