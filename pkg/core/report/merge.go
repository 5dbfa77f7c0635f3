package report

// Merge combines a base result (the current in-session report, which may be
// nil) with an incoming, already-ingested result into one consistent report.
//
// Matching countries are combined additively on cost and revenue, then
// rederived. Base order is preserved; new countries append in incoming order.
// BadCountries and recommendations union with first-seen order. The summary is
// always recomputed from the merged details, never carried over from either
// input, so a merge can never break summary/detail consistency.
//
// Because the combine is purely additive by key, Merge is associative, and
// since derived fields depend only on the final cost/revenue sums it is
// commutative as well.
func Merge(base, incoming *AnalysisResult) *AnalysisResult {
	if incoming == nil {
		return base.Clone()
	}
	if base == nil {
		return incoming.Clone()
	}

	details := make([]CountryRecord, 0, len(base.Details)+len(incoming.Details))
	index := make(map[string]int, len(base.Details))
	for _, rec := range base.Details {
		details = appendRecord(details, index, rec)
	}
	for _, rec := range incoming.Details {
		details = appendRecord(details, index, rec)
	}

	return &AnalysisResult{
		Summary:         Aggregate(details),
		Details:         details,
		BadCountries:    unionStrings(base.BadCountries, incoming.BadCountries),
		Recommendations: unionStrings(base.Recommendations, incoming.Recommendations),
	}
}

// appendRecord inserts rec into details keyed by country, combining
// additively when the country is already present.
func appendRecord(details []CountryRecord, index map[string]int, rec CountryRecord) []CountryRecord {
	if i, ok := index[rec.Country]; ok {
		prev := details[i]
		details[i] = DeriveRecord(rec.Country, prev.Cost+rec.Cost, prev.Revenue+rec.Revenue)
		return details
	}
	index[rec.Country] = len(details)
	return append(details, rec)
}

// unionStrings concatenates both lists, removing duplicates while keeping the
// order of first appearance.
func unionStrings(base, incoming []string) []string {
	out := make([]string, 0, len(base)+len(incoming))
	seen := make(map[string]bool, len(base)+len(incoming))
	for _, list := range [][]string{base, incoming} {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
