package report

import (
	"fmt"
	"strings"
)

// lossThreshold separates LOSS from BREAK_EVEN. The negative-side slack
// absorbs floating-point and extraction noise around zero; the positive side
// stays a strict > 0 cut so small real profits still read PROFITABLE.
const lossThreshold = -0.5

// ValidationError marks a record that is structurally unusable. Callers drop
// or surface such records; they never invent a country name for them.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: field %q %s", e.Field, e.Reason)
}

// StatusForProfit applies the fixed threshold rule.
func StatusForProfit(profit float64) Status {
	switch {
	case profit > 0:
		return StatusProfitable
	case profit < lossThreshold:
		return StatusLoss
	default:
		return StatusBreakEven
	}
}

// DeriveRecord is the single path from raw fields (cost, revenue) to derived
// fields (profit, roi, status). Both normalization and merging go through it.
func DeriveRecord(country string, cost, revenue float64) CountryRecord {
	profit := revenue - cost
	roi := 0.0
	if cost > 0 {
		roi = (profit / cost) * 100
	}
	return CountryRecord{
		Country: country,
		Cost:    cost,
		Revenue: revenue,
		Profit:  profit,
		ROI:     roi,
		Status:  StatusForProfit(profit),
	}
}

// NormalizeRecord repairs a raw, possibly partial record into a complete and
// internally consistent one. Missing or negative cost/revenue default to 0.
// Supplied profit/roi/status are discarded and rederived: they are cheap to
// recompute and the usual source of legacy inconsistency.
func NormalizeRecord(raw CountryRecord) (CountryRecord, error) {
	country := strings.TrimSpace(raw.Country)
	if country == "" {
		return CountryRecord{}, &ValidationError{Field: "country", Reason: "is missing or empty"}
	}

	cost := raw.Cost
	if cost < 0 {
		cost = 0
	}
	revenue := raw.Revenue
	if revenue < 0 {
		revenue = 0
	}

	return DeriveRecord(country, cost, revenue), nil
}
