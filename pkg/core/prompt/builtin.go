package prompt

// ExtractionPromptID identifies the screenshot reconciliation prompt.
const ExtractionPromptID = "report_extraction"

// The JSON shape in the system prompt is the contract the ingestion boundary
// validates against. The model's output is still treated as untrusted.
const extractionSystemPrompt = `You are an expert media-buying analyst.
You will receive two advertising platform screenshots: the first is a COST report (spend per country), the second is a REVENUE report (earnings per country).

Read every per-country or per-zone row from both screenshots and reconcile them into one table. Match rows across the two screenshots by country name. Use the canonical full country name in English (e.g. "United States", not "US").

You must return exactly one JSON object with this schema and nothing else:
{
  "details": [
    {"country": "string", "cost": number, "revenue": number}
  ],
  "badCountries": ["country names that lose money and should be blocked"],
  "recommendations": ["short actionable advice strings"]
}

Rules:
1. Only extract numbers that are visible in the screenshots. Never invent rows.
2. A country present in only one screenshot gets 0 for the missing side.
3. cost and revenue are plain non-negative numbers without currency symbols.
4. Do not include profit, roi, status or summary fields; they are computed downstream.
`

const extractionUserPrompt = `The first image is the cost report, the second image is the revenue report. Extract and reconcile them. Return ONLY the JSON object.`

func registerBuiltins(r *Registry) {
	r.Register(&PromptTemplate{
		ID:           ExtractionPromptID,
		Category:     "extraction",
		Description:  "Reconcile a cost screenshot and a revenue screenshot into per-country records",
		SystemPrompt: extractionSystemPrompt,
		UserPrompt:   extractionUserPrompt,
	})
}
