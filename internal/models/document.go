package models

// ClassificationResult is the classifier's verdict for one document.
// Confidence is in [0, 1]. Immutable once produced.
type ClassificationResult struct {
	DocumentType string  `json:"documentType"`
	Confidence   float64 `json:"confidence"`
}

// Unknown is the document type assigned when no rule profile matches
// with enough confidence, or when the text is empty.
const Unknown = "Unknown"

// UnknownResult is the fixed low-confidence verdict for unclassifiable text.
func UnknownResult() ClassificationResult {
	return ClassificationResult{DocumentType: Unknown, Confidence: 0.1}
}

// Metadata holds the fields pulled out of document text. Every field is
// optional; the empty value means the field could not be extracted, which
// is an ordinary outcome rather than an error.
type Metadata struct {
	Date             string   `json:"date,omitempty"`
	FileModifiedDate string   `json:"fileModifiedDate,omitempty"`
	OrganizationName string   `json:"organizationName,omitempty"`
	PersonName       string   `json:"personName,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`

	// Type-specific fields that filename templates may reference. The
	// extractor does not always populate these.
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Year          string `json:"year,omitempty"`
	Month         string `json:"month,omitempty"`
}
