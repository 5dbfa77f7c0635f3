// Package export writes the canonical AnalysisResult in the two supported
// external encodings. Both round-trip through pkg/core/ingest.
package export

import (
	"encoding/json"
	"fmt"

	"adspend_analyst/pkg/core/report"
)

// JSON serializes the result verbatim, pretty-printed.
func JSON(res *report.AnalysisResult) (string, error) {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}
	return string(out), nil
}
