package ingest

import "fmt"

// FormatError marks a payload that is not a recognizable report-shaped
// document: missing details, unparsable embedded JSON, or a missing marker.
// It aborts the operation; no partial canonical state is committed.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unrecognized report format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unrecognized report format: %s", e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// UpstreamError classifies failures of the inference collaborator: the call
// failed, timed out, or returned no extractable JSON span.
type UpstreamError struct {
	Reason  string
	Timeout bool
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inference service error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("inference service error: %s", e.Reason)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
