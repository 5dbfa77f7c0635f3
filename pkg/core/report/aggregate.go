package report

// Aggregate computes the summary over a sequence of normalized records.
// Pure and total: empty input yields the zero summary, and TotalROI carries
// the same zero-cost guard as per-record derivation.
func Aggregate(details []CountryRecord) Summary {
	var s Summary
	for _, rec := range details {
		s.TotalCost += rec.Cost
		s.TotalRevenue += rec.Revenue
	}
	s.NetProfit = s.TotalRevenue - s.TotalCost
	if s.TotalCost > 0 {
		s.TotalROI = (s.NetProfit / s.TotalCost) * 100
	}
	return s
}
