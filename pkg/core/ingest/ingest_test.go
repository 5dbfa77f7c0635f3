package ingest

import (
	"errors"
	"strings"
	"testing"

	"adspend_analyst/pkg/core/report"
)

func TestIngestJSONLegacySummarySynthesis(t *testing.T) {
	// Old exports carry no summary, badCountries or recommendations.
	legacy := `{"details": [{"country": "India", "cost": 100, "revenue": 150}]}`

	result, err := NewIngestor().IngestJSON(legacy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := result.Report

	sum := res.Summary
	if sum.TotalCost != 100 || sum.TotalRevenue != 150 || sum.NetProfit != 50 || sum.TotalROI != 50 {
		t.Errorf("synthesized summary = %+v, want cost 100 revenue 150 profit 50 roi 50", sum)
	}
	if res.BadCountries == nil || res.Recommendations == nil {
		t.Error("advisory lists must default to empty, not nil")
	}
	if res.Details[0].Status != report.StatusProfitable {
		t.Errorf("status = %s, want PROFITABLE", res.Details[0].Status)
	}
}

func TestIngestJSONOverridesSuppliedSummary(t *testing.T) {
	// A stored summary that disagrees with the details loses.
	payload := `{
		"summary": {"totalCost": 1, "totalRevenue": 2, "netProfit": 1, "totalRoi": 100},
		"details": [{"country": "India", "cost": 100, "revenue": 150}]
	}`
	result, err := NewIngestor().IngestJSON(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Report.Summary.TotalCost != 100 {
		t.Errorf("TotalCost = %v, want 100 (rederived)", result.Report.Summary.TotalCost)
	}
}

func TestIngestJSONMissingDetails(t *testing.T) {
	for _, payload := range []string{
		`{"summary": {"totalCost": 5}}`,
		`{}`,
	} {
		_, err := NewIngestor().IngestJSON(payload)
		var format *FormatError
		if !errors.As(err, &format) {
			t.Errorf("IngestJSON(%s) error = %v, want FormatError", payload, err)
		}
	}
}

func TestIngestJSONEmptyDetailsIsValid(t *testing.T) {
	result, err := NewIngestor().IngestJSON(`{"details": []}`)
	if err != nil {
		t.Fatalf("empty details must ingest cleanly, got %v", err)
	}
	if len(result.Report.Details) != 0 {
		t.Errorf("Details = %+v, want empty", result.Report.Details)
	}
	if result.Report.Summary != (report.Summary{}) {
		t.Errorf("Summary = %+v, want zero", result.Report.Summary)
	}
}

func TestIngestJSONDropsNamelessRecords(t *testing.T) {
	payload := `{"details": [
		{"country": "India", "cost": 100, "revenue": 150},
		{"country": "", "cost": 5, "revenue": 5},
		{"country": "   ", "cost": 7, "revenue": 1}
	]}`
	result, err := NewIngestor().IngestJSON(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", result.Dropped)
	}
	if len(result.Report.Details) != 1 {
		t.Errorf("Details = %+v, want only India", result.Report.Details)
	}
	// Dropped rows contribute nothing to totals.
	if result.Report.Summary.TotalCost != 100 {
		t.Errorf("TotalCost = %v, want 100", result.Report.Summary.TotalCost)
	}
}

func TestIngestJSONCombinesDuplicateCountries(t *testing.T) {
	payload := `{"details": [
		{"country": "India", "cost": 100, "revenue": 150},
		{"country": "India", "cost": 50, "revenue": 20}
	]}`
	result, err := NewIngestor().IngestJSON(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Report.Details) != 1 {
		t.Fatalf("Details = %+v, want one combined India row", result.Report.Details)
	}
	india := result.Report.Details[0]
	if india.Cost != 150 || india.Revenue != 170 {
		t.Errorf("India = cost %v revenue %v, want 150/170", india.Cost, india.Revenue)
	}
}

func TestIngestJSONRepairsSloppyJSON(t *testing.T) {
	// Trailing commas, typical model damage.
	sloppy := `{"details": [{"country": "India", "cost": 100, "revenue": 150},],}`
	result, err := NewIngestor().IngestJSON(sloppy)
	if err != nil {
		t.Fatalf("repair ladder failed: %v", err)
	}
	if len(result.Report.Details) != 1 || result.Report.Details[0].Country != "India" {
		t.Errorf("Details = %+v, want India row", result.Report.Details)
	}
}

func TestIngestModelTextFencedOutput(t *testing.T) {
	raw := "Here is the reconciled report:\n```json\n" +
		`{"details": [{"country": "India", "cost": 100, "revenue": 150}], "badCountries": [], "recommendations": []}` +
		"\n```\nLet me know if you need anything else."
	result, err := NewIngestor().IngestModelText(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Report.Details[0].Profit != 50 {
		t.Errorf("Profit = %v, want 50", result.Report.Details[0].Profit)
	}
}

func TestIngestModelTextNoJSON(t *testing.T) {
	_, err := NewIngestor().IngestModelText("I could not read the screenshots, sorry.")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want UpstreamError", err)
	}
}

func TestExtractJSONSpanPlainObject(t *testing.T) {
	span, err := ExtractJSONSpan(`prefix {"a": {"b": 1}} suffix`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if span != `{"a": {"b": 1}}` {
		t.Errorf("span = %q", span)
	}
}

func TestExtractEmbeddedJSON(t *testing.T) {
	doc := `<html><head><title>r</title></head><body>
<table><tr><td>India</td></tr></table>
<script>
const DATA = {"details": [{"country": "India", "cost": 100, "revenue": 150}]};
</script>
</body></html>`
	embedded, err := ExtractEmbeddedJSON(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(embedded, `"country": "India"`) {
		t.Errorf("embedded = %q, want the DATA object", embedded)
	}
}

func TestExtractEmbeddedJSONNoMarker(t *testing.T) {
	_, err := ExtractEmbeddedJSON(`<html><body><p>hello</p></body></html>`)
	var format *FormatError
	if !errors.As(err, &format) {
		t.Fatalf("error = %v, want FormatError", err)
	}
}

func TestIngestFileDispatch(t *testing.T) {
	ing := NewIngestor()
	jsonContent := `{"details": [{"country": "India", "cost": 100, "revenue": 150}]}`

	if _, err := ing.IngestFile("report.JSON", jsonContent); err != nil {
		t.Errorf("uppercase extension rejected: %v", err)
	}

	_, err := ing.IngestFile("report.csv", "India,100,150")
	var format *FormatError
	if !errors.As(err, &format) {
		t.Errorf("IngestFile(.csv) error = %v, want FormatError", err)
	}
}
