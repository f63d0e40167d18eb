package models

// Status is the terminal state of one file's trip through the pipeline.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Skip reasons.
const (
	ReasonEmptyText = "empty_text"
)

// Outcome records what happened to a single file. It is created once at
// the end of processing and never mutated afterwards.
type Outcome struct {
	Status         Status               `json:"status"`
	Original       string               `json:"original,omitempty"`
	NewName        string               `json:"new,omitempty"`
	Reason         string               `json:"reason,omitempty"`
	Err            error                `json:"-"`
	Classification ClassificationResult `json:"classification,omitempty"`
	Metadata       Metadata             `json:"metadata,omitempty"`
}

// SuccessOutcome builds a success record for a completed rename.
func SuccessOutcome(original, newName string, cls ClassificationResult, md Metadata) Outcome {
	return Outcome{
		Status:         StatusSuccess,
		Original:       original,
		NewName:        newName,
		Classification: cls,
		Metadata:       md,
	}
}

// SkippedOutcome builds a skip record with its reason.
func SkippedOutcome(original, reason string) Outcome {
	return Outcome{Status: StatusSkipped, Original: original, Reason: reason}
}

// FailedOutcome builds a failure record retaining the error for logging.
func FailedOutcome(original string, err error) Outcome {
	return Outcome{Status: StatusFailed, Original: original, Err: err}
}
