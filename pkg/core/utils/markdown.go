package utils

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

// StripCodeFences removes conversational whitespace and outer markdown code
// fences (```json ... ``` and the generic variant) from model output.
func StripCodeFences(input string) string {
	cleaned := strings.TrimSpace(input)

	for _, lang := range []string{"```json", "```"} {
		if strings.HasPrefix(cleaned, lang) && strings.HasSuffix(cleaned, "```") {
			cleaned = strings.TrimPrefix(cleaned, lang)
			cleaned = strings.TrimSuffix(cleaned, "```")
			cleaned = strings.TrimSpace(cleaned)
			break
		}
	}

	return cleaned
}

// RenderMarkdown converts markdown to HTML. Model recommendations frequently
// arrive with markdown emphasis; the HTML export renders them properly
// instead of showing raw asterisks.
func RenderMarkdown(input string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(input), &buf); err != nil {
		// Goldmark is extremely permissive; on the rare failure fall back to
		// the raw text.
		return input
	}
	return strings.TrimSpace(buf.String())
}
