package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"adspend_analyst/pkg/core/report"
	"adspend_analyst/pkg/core/utils"
)

// Result is an ingested, invariant-satisfying report plus the number of raw
// records that had to be dropped on the way in.
type Result struct {
	Report  *report.AnalysisResult
	Dropped int
}

// Ingestor turns arbitrary external payloads (model output, imported files,
// stored history entries) into values that satisfy the AnalysisResult
// invariants. External shapes are never trusted: everything is validated and
// repaired here before it reaches merge or aggregation logic.
type Ingestor struct{}

func NewIngestor() *Ingestor {
	return &Ingestor{}
}

// rawPayload is the lenient decode target. Details is a pointer so an absent
// field (a hard FormatError) is distinguishable from an empty sequence.
type rawPayload struct {
	Summary         *report.Summary         `json:"summary"`
	Details         *[]report.CountryRecord `json:"details"`
	BadCountries    []string                `json:"badCountries"`
	Recommendations []string                `json:"recommendations"`
}

// IngestJSON parses a JSON document (strict, repaired, or hjson, in that
// order) and validates/repairs it into a canonical-shape report.
//
// Repairs applied:
//   - absent badCountries/recommendations default to empty,
//   - the summary is rederived from details (legacy reports predate the
//     summary field; presenting a zero summary over real rows would be a
//     worse failure than the recompute),
//   - records failing normalization are dropped and counted, a partial
//     report being preferable to total failure,
//   - duplicate countries are combined additively so details stays unique
//     by country.
func (i *Ingestor) IngestJSON(raw string) (*Result, error) {
	var payload rawPayload
	if _, err := utils.SmartParse(raw, &payload); err != nil {
		return nil, &FormatError{Reason: "payload is not a report-shaped JSON document", Err: err}
	}
	if payload.Details == nil {
		return nil, &FormatError{Reason: "payload has no details field"}
	}

	details := make([]report.CountryRecord, 0, len(*payload.Details))
	index := make(map[string]int, len(*payload.Details))
	dropped := 0
	for _, rawRec := range *payload.Details {
		rec, err := report.NormalizeRecord(rawRec)
		if err != nil {
			var verr *report.ValidationError
			if errors.As(err, &verr) {
				dropped++
				continue
			}
			return nil, err
		}
		if pos, ok := index[rec.Country]; ok {
			prev := details[pos]
			details[pos] = report.DeriveRecord(rec.Country, prev.Cost+rec.Cost, prev.Revenue+rec.Revenue)
			continue
		}
		index[rec.Country] = len(details)
		details = append(details, rec)
	}

	res := &report.AnalysisResult{
		Summary:         report.Aggregate(details),
		Details:         details,
		BadCountries:    defaultStrings(payload.BadCountries),
		Recommendations: defaultStrings(payload.Recommendations),
	}
	if dropped > 0 {
		fmt.Printf("[INGEST] Dropped %d record(s) with no usable country name\n", dropped)
	}
	return &Result{Report: res, Dropped: dropped}, nil
}

// IngestModelText ingests raw inference output: free-form text expected to
// contain one JSON object, possibly fenced or surrounded by conversation.
func (i *Ingestor) IngestModelText(raw string) (*Result, error) {
	span, err := ExtractJSONSpan(raw)
	if err != nil {
		return nil, &UpstreamError{Reason: "model returned no extractable JSON span", Err: err}
	}
	return i.IngestJSON(span)
}

// IngestFile ingests an imported file, dispatching on extension: .json is
// parsed directly, .html is scanned for the const DATA marker.
func (i *Ingestor) IngestFile(filename, content string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return i.IngestJSON(content)
	case ".html", ".htm":
		embedded, err := ExtractEmbeddedJSON(content)
		if err != nil {
			return nil, err
		}
		return i.IngestJSON(embedded)
	default:
		return nil, &FormatError{Reason: fmt.Sprintf("unsupported file type %q", filepath.Ext(filename))}
	}
}

func defaultStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
