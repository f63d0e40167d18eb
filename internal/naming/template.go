package naming

import (
	"regexp"
	"strings"
	"time"

	"github.com/feichai0017/file-renamer/internal/models"
)

const timestampLayout = "20060102_150405"

// defaultTemplates covers the built-in document types plus the Unknown
// and default entries. A config-supplied table replaces it wholesale.
var defaultTemplates = map[string]string{
	"Invoice":       "{vendor}_Invoice_{invoice_number}_{date}",
	"Contract":      "Contract_{parties}_{date}",
	"ID":            "{doc_type}_{person_name}_{issue_date}",
	"BankStatement": "{bank}_Statement_{year}-{month}",
	"Receipt":       "Receipt_{vendor}_{amount}_{date}",
	"Unknown":       "Unknown_{date}",
	"default":       "{doc_type}_{primary_entity}_{date}",
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// TemplateGenerator fills per-type filename templates from metadata.
// Template and alias tables are read-only after construction.
type TemplateGenerator struct {
	templates map[string]string
	maxLength int
	now       func() time.Time
}

// NewTemplateGenerator builds the reference generator. templates may be
// nil to use the built-in table.
func NewTemplateGenerator(templates map[string]string, maxLength int) *TemplateGenerator {
	if len(templates) == 0 {
		templates = defaultTemplates
	}
	return &TemplateGenerator{
		templates: templates,
		maxLength: maxLength,
		now:       time.Now,
	}
}

// Generate fills the document type's template, degrading through fallback
// logic when fields are missing, then sanitizes and length-caps the
// result. The returned name has no extension and is never empty.
func (g *TemplateGenerator) Generate(md models.Metadata, cls models.ClassificationResult, originalFilename string) string {
	template, ok := g.templates[cls.DocumentType]
	if !ok {
		template = g.templates["default"]
	}

	name := g.fillTemplate(template, md, cls)
	name = Sanitize(name)
	name = g.enforceLength(name)

	// Sanitization can erase everything (a template of pure invalid
	// characters, say). Fall back to the original name plus a timestamp so
	// generation still yields something usable.
	if name == "" {
		name = g.enforceLength(Sanitize(g.lastResort(originalFilename)))
	}
	return name
}

// variables builds the template variable set from metadata and
// classification per the field-alias table.
func variables(md models.Metadata, cls models.ClassificationResult) map[string]string {
	primary := md.OrganizationName
	if primary == "" {
		primary = md.PersonName
	}
	return map[string]string{
		"doc_type":       cls.DocumentType,
		"vendor":         md.OrganizationName,
		"parties":        md.OrganizationName,
		"bank":           md.OrganizationName,
		"person_name":    md.PersonName,
		"primary_entity": primary,
		"date":           md.Date,
		"issue_date":     md.Date,
		"invoice_number": md.InvoiceNumber,
		"amount":         md.Amount,
		"year":           md.Year,
		"month":          md.Month,
	}
}

// fillTemplate substitutes every placeholder, or switches to fallback
// logic for the whole name if any referenced variable is empty or unknown.
// Partial substitution is never attempted.
func (g *TemplateGenerator) fillTemplate(template string, md models.Metadata, cls models.ClassificationResult) string {
	vars := variables(md, cls)

	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if vars[m[1]] == "" {
			return g.fallback(md, cls)
		}
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(ph string) string {
		return vars[ph[1 : len(ph)-1]]
	})
}

// fallback assembles a deterministic degraded name:
// doc type, entity if known, then the best available date. When neither
// entity nor date exists, a NoMetadata marker keeps the name
// distinguishable from other fallbacks in the batch.
func (g *TemplateGenerator) fallback(md models.Metadata, cls models.ClassificationResult) string {
	entity := md.OrganizationName
	if entity == "" {
		entity = md.PersonName
	}

	parts := []string{cls.DocumentType}
	if entity != "" {
		parts = append(parts, entity)
	}

	switch {
	case md.Date != "":
		parts = append(parts, md.Date)
	case md.FileModifiedDate != "":
		parts = append(parts, md.FileModifiedDate)
	default:
		parts = append(parts, g.now().Format(timestampLayout))
	}

	if entity == "" && md.Date == "" {
		parts = append(parts, "NoMetadata")
	}

	return strings.Join(parts, "_")
}

// lastResort names the file after its original base name plus a timestamp.
func (g *TemplateGenerator) lastResort(originalFilename string) string {
	base := originalFilename
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + "_" + g.now().Format(timestampLayout)
}

// enforceLength truncates an over-long name around a middle ellipsis,
// keeping both ends; dates and entities often live at the tail. Length
// is counted in runes so a multi-byte character is never cut in half.
func (g *TemplateGenerator) enforceLength(name string) string {
	runes := []rune(name)
	if len(runes) <= g.maxLength {
		return name
	}
	half := (g.maxLength - 3) / 2
	return string(runes[:half]) + "..." + string(runes[len(runes)-half:])
}
