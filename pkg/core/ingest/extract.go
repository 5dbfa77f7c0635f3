package ingest

import (
	"strings"

	"adspend_analyst/pkg/core/utils"
)

// ExtractJSONSpan pulls the JSON object out of free-form model text. The
// model is instructed to return a single JSON document, but in practice it
// may wrap it in code fences or surround it with conversational filler, so:
// strip known fences, then take the substring between the first '{' and the
// last '}'.
func ExtractJSONSpan(raw string) (string, error) {
	cleaned := utils.StripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", &FormatError{Reason: "no JSON object span found in model output"}
	}

	return cleaned[start : end+1], nil
}
