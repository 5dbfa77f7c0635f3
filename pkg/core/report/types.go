package report

// Status classifies a country's bottom line.
type Status string

const (
	StatusProfitable Status = "PROFITABLE"
	StatusLoss       Status = "LOSS"
	StatusBreakEven  Status = "BREAK_EVEN"
)

// CountryRecord is one country's (or ad zone's) financial result.
// Cost and Revenue are the raw fields; Profit, ROI and Status are derived and
// must only ever be written by DeriveRecord so they cannot drift.
type CountryRecord struct {
	Country string  `json:"country"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	ROI     float64 `json:"roi"`
	Status  Status  `json:"status"`
}

// Summary aggregates a set of CountryRecords. It is always a pure function of
// its source records (see Aggregate) and is never mutated independently.
type Summary struct {
	TotalCost    float64 `json:"totalCost"`
	TotalRevenue float64 `json:"totalRevenue"`
	NetProfit    float64 `json:"netProfit"`
	TotalROI     float64 `json:"totalRoi"`
}

// AnalysisResult is the canonical report unit: per-country details, the
// derived summary, and the model's advisory lists.
type AnalysisResult struct {
	Summary         Summary         `json:"summary"`
	Details         []CountryRecord `json:"details"`
	BadCountries    []string        `json:"badCountries"`
	Recommendations []string        `json:"recommendations"`
}

// Clone returns a deep copy. History snapshots must not alias the live
// session result.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	out := &AnalysisResult{
		Summary:         r.Summary,
		Details:         make([]CountryRecord, len(r.Details)),
		BadCountries:    make([]string, len(r.BadCountries)),
		Recommendations: make([]string, len(r.Recommendations)),
	}
	copy(out.Details, r.Details)
	copy(out.BadCountries, r.BadCountries)
	copy(out.Recommendations, r.Recommendations)
	return out
}

// HistoryItem is an immutable snapshot of a completed analysis.
type HistoryItem struct {
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"` // milliseconds since epoch
	Result    *AnalysisResult `json:"result"`
}
