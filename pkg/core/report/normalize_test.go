package report

import (
	"math"
	"testing"
)

func TestStatusThresholds(t *testing.T) {
	// The LOSS cut is asymmetric on purpose: noise guard on the negative
	// side only. 0 and -0.3 are BREAK_EVEN, +0.3 is PROFITABLE.
	cases := []struct {
		profit float64
		want   Status
	}{
		{100, StatusProfitable},
		{0.3, StatusProfitable},
		{0, StatusBreakEven},
		{-0.3, StatusBreakEven},
		{-0.5, StatusBreakEven},
		{-0.51, StatusLoss},
		{-100, StatusLoss},
	}
	for _, tc := range cases {
		if got := StatusForProfit(tc.profit); got != tc.want {
			t.Errorf("StatusForProfit(%v) = %s, want %s", tc.profit, got, tc.want)
		}
	}
}

func TestNormalizeRecordDerivation(t *testing.T) {
	// Supplied derived fields are lies; cost=100 revenue=150 must come out
	// as profit=50 roi=50 PROFITABLE no matter what was claimed.
	raw := CountryRecord{
		Country: "India",
		Cost:    100,
		Revenue: 150,
		Profit:  -999,
		ROI:     12345,
		Status:  StatusLoss,
	}
	rec, err := NormalizeRecord(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Profit != 50 {
		t.Errorf("Profit = %v, want 50", rec.Profit)
	}
	if rec.ROI != 50 {
		t.Errorf("ROI = %v, want 50", rec.ROI)
	}
	if rec.Status != StatusProfitable {
		t.Errorf("Status = %s, want PROFITABLE", rec.Status)
	}
}

func TestNormalizeRecordDefaults(t *testing.T) {
	// Negative and missing raw values default to 0.
	rec, err := NormalizeRecord(CountryRecord{Country: "Brazil", Cost: -5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Cost != 0 || rec.Revenue != 0 || rec.Profit != 0 {
		t.Errorf("got cost=%v revenue=%v profit=%v, want all 0", rec.Cost, rec.Revenue, rec.Profit)
	}
	if rec.Status != StatusBreakEven {
		t.Errorf("Status = %s, want BREAK_EVEN", rec.Status)
	}
}

func TestNormalizeRecordZeroCostROI(t *testing.T) {
	// cost == 0 means roi == 0 regardless of revenue.
	rec, err := NormalizeRecord(CountryRecord{Country: "Peru", Revenue: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ROI != 0 {
		t.Errorf("ROI = %v, want 0 for zero cost", rec.ROI)
	}
	if rec.Profit != 500 {
		t.Errorf("Profit = %v, want 500", rec.Profit)
	}
}

func TestNormalizeRecordRejectsEmptyCountry(t *testing.T) {
	for _, country := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeRecord(CountryRecord{Country: country, Cost: 10})
		if err == nil {
			t.Errorf("NormalizeRecord(%q) expected ValidationError, got nil", country)
			continue
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("NormalizeRecord(%q) error type %T, want *ValidationError", country, err)
		}
	}
}

func TestNormalizeRecordTrimsCountry(t *testing.T) {
	rec, err := NormalizeRecord(CountryRecord{Country: "  Japan  ", Cost: 1, Revenue: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Country != "Japan" {
		t.Errorf("Country = %q, want %q", rec.Country, "Japan")
	}
}

func TestDeriveRecordROIRounding(t *testing.T) {
	// cost=150 revenue=170 => profit=20, roi = 20/150*100 = 13.333...
	rec := DeriveRecord("India", 150, 170)
	if math.Abs(rec.ROI-13.3333333) > 0.0001 {
		t.Errorf("ROI = %v, want ~13.3333", rec.ROI)
	}
}
