package report

import "testing"

func TestFilterVisibleHidesCountry(t *testing.T) {
	res := baseResult()
	view := FilterVisible(res, []string{"India"})

	if len(view.Details) != 1 || view.Details[0].Country != "Brazil" {
		t.Fatalf("Details = %+v, want only Brazil", view.Details)
	}
	// Summary is recomputed over the visible subset, Brazil only.
	if view.Summary.TotalCost != 10 || view.Summary.TotalRevenue != 5 || view.Summary.NetProfit != -5 {
		t.Errorf("Summary = %+v, want cost 10 revenue 5 profit -5", view.Summary)
	}
	if len(view.BadCountries) != 1 || view.BadCountries[0] != "Brazil" {
		t.Errorf("BadCountries = %v, want [Brazil]", view.BadCountries)
	}
}

func TestFilterVisibleHidesBadCountryEntry(t *testing.T) {
	res := baseResult()
	view := FilterVisible(res, []string{"Brazil"})
	if len(view.BadCountries) != 0 {
		t.Errorf("BadCountries = %v, want empty after hiding Brazil", view.BadCountries)
	}
}

func TestFilterVisibleDoesNotMutateCanonical(t *testing.T) {
	res := baseResult()
	FilterVisible(res, []string{"India", "Brazil"})
	if len(res.Details) != 2 {
		t.Errorf("canonical details mutated: %d rows", len(res.Details))
	}
	if res.Summary.TotalCost != 110 {
		t.Errorf("canonical summary mutated: %+v", res.Summary)
	}
}

func TestFilterVisibleEmptyHiddenList(t *testing.T) {
	res := baseResult()
	view := FilterVisible(res, nil)
	if len(view.Details) != 2 {
		t.Errorf("nil hidden list filtered rows: %d", len(view.Details))
	}
	if view.Summary != res.Summary {
		t.Errorf("view summary %+v differs from canonical %+v", view.Summary, res.Summary)
	}
}

func TestFilterVisibleNilResult(t *testing.T) {
	view := FilterVisible(nil, []string{"India"})
	if len(view.Details) != 0 || len(view.BadCountries) != 0 {
		t.Errorf("FilterVisible(nil, ...) = %+v, want empty view", view)
	}
}
