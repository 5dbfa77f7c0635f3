package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"adspend_analyst/pkg/core/report"
	"adspend_analyst/pkg/core/utils"
)

// htmlPayload is the document-embedded data block. generatedAt is a
// human-readable timestamp, informational only; everything else round-trips
// exactly through the importer.
type htmlPayload struct {
	Details         []report.CountryRecord `json:"details"`
	BadCountries    []string               `json:"badCountries"`
	Recommendations []string               `json:"recommendations"`
	Summary         report.Summary         `json:"summary"`
	GeneratedAt     string                 `json:"generatedAt"`
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Ad Spend Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.PROFITABLE { color: #0a7d33; }
.LOSS { color: #c0392b; }
.BREAK_EVEN { color: #888; }
</style>
</head>
<body>
<h1>Ad Spend Report</h1>
<p>Generated at {{.GeneratedAt}}</p>
<h2>Summary</h2>
<p>Cost {{printf "%.2f" .Result.Summary.TotalCost}} |
Revenue {{printf "%.2f" .Result.Summary.TotalRevenue}} |
Net {{printf "%.2f" .Result.Summary.NetProfit}} |
ROI {{printf "%.2f" .Result.Summary.TotalROI}}%</p>
<h2>Countries</h2>
<table>
<tr><th>Country</th><th>Cost</th><th>Revenue</th><th>Profit</th><th>ROI %</th><th>Status</th></tr>
{{range .Result.Details}}<tr class="{{.Status}}"><td>{{.Country}}</td><td>{{printf "%.2f" .Cost}}</td><td>{{printf "%.2f" .Revenue}}</td><td>{{printf "%.2f" .Profit}}</td><td>{{printf "%.2f" .ROI}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
{{if .Result.BadCountries}}<h2>Blocked Countries</h2>
<p>{{range $i, $c := .Result.BadCountries}}{{if $i}}, {{end}}{{$c}}{{end}}</p>{{end}}
{{if .Recommendations}}<h2>Recommendations</h2>
{{range .Recommendations}}<div>{{.}}</div>
{{end}}{{end}}
<script>
const DATA = {{.Data}};
</script>
</body>
</html>
`))

type htmlContext struct {
	Result          *report.AnalysisResult
	Recommendations []template.HTML
	GeneratedAt     string
	Data            template.JS
}

// HTML renders a self-contained static report embedding the canonical data
// as `const DATA = {...};`, the exact marker the importer scans for.
func HTML(res *report.AnalysisResult, generatedAt time.Time) (string, error) {
	payload := htmlPayload{
		Details:         res.Details,
		BadCountries:    res.BadCountries,
		Recommendations: res.Recommendations,
		Summary:         res.Summary,
		GeneratedAt:     generatedAt.Format("2006-01-02 15:04:05"),
	}
	// Compact marshal: the importer's marker pattern is non-greedy and the
	// blob must stay a single `{...};` span. json.Marshal escapes angle
	// brackets, so the blob cannot terminate the script element early.
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize embedded data: %w", err)
	}

	rendered := make([]template.HTML, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		rendered = append(rendered, template.HTML(utils.RenderMarkdown(rec)))
	}

	var b strings.Builder
	err = htmlTemplate.Execute(&b, htmlContext{
		Result:          res,
		Recommendations: rendered,
		GeneratedAt:     payload.GeneratedAt,
		Data:            template.JS(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}
