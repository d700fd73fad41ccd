package domain

import "fmt"

// IngestionError marks an unreadable or unsupported resume file. Callers
// log it, skip the item and continue the batch.
type IngestionError struct {
	Path   string
	Reason string
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed for %s: %s", e.Path, e.Reason)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// ExtractionFailure marks an internal fault during pattern extraction.
// Extraction itself never propagates it; it is recorded for reporting only.
type ExtractionFailure struct {
	Stage string
	Err   error
}

func (e *ExtractionFailure) Error() string {
	return fmt.Sprintf("extraction failed at %s stage", e.Stage)
}

func (e *ExtractionFailure) Unwrap() error {
	return e.Err
}

// EmbeddingError marks a failed encode/similarity call. Surfaced as a
// non-fatal per-pair failure at the matching engine boundary.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding service: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// PersistenceError marks a constraint violation or storage fault isolated
// to a single record.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ItemFailure is one enumerated per-item failure inside a batch run.
type ItemFailure struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// BatchReport is the aggregate outcome of a batch operation. Batches always
// produce a best-effort partial result; no single bad record aborts the run.
type BatchReport struct {
	Processed int           `json:"processed"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []ItemFailure `json:"failures,omitempty"`
}

func (r *BatchReport) AddSuccess() {
	r.Processed++
	r.Succeeded++
}

func (r *BatchReport) AddFailure(item string, err error) {
	r.Processed++
	r.Failed++
	r.Failures = append(r.Failures, ItemFailure{Item: item, Reason: err.Error()})
}
