package report

// VisibleView is the presentation-layer projection of a result with some
// countries hidden. It is derived on every read and never written back as
// canonical state.
type VisibleView struct {
	Details      []CountryRecord `json:"details"`
	BadCountries []string        `json:"badCountries"`
	Summary      Summary         `json:"summary"`
}

// FilterVisible projects the result against a set of user-hidden country
// names, preserving relative order, and derives the on-screen summary over
// exactly the visible subset.
func FilterVisible(res *AnalysisResult, hidden []string) VisibleView {
	hiddenSet := make(map[string]bool, len(hidden))
	for _, name := range hidden {
		hiddenSet[name] = true
	}

	view := VisibleView{
		Details:      []CountryRecord{},
		BadCountries: []string{},
	}
	if res == nil {
		return view
	}
	for _, rec := range res.Details {
		if !hiddenSet[rec.Country] {
			view.Details = append(view.Details, rec)
		}
	}
	for _, name := range res.BadCountries {
		if !hiddenSet[name] {
			view.BadCountries = append(view.BadCountries, name)
		}
	}
	view.Summary = Aggregate(view.Details)
	return view
}
