package report

import "testing"

func TestAggregateTotals(t *testing.T) {
	details := []CountryRecord{
		DeriveRecord("India", 100, 150),
		DeriveRecord("Brazil", 10, 5),
	}
	sum := Aggregate(details)
	if sum.TotalCost != 110 {
		t.Errorf("TotalCost = %v, want 110", sum.TotalCost)
	}
	if sum.TotalRevenue != 155 {
		t.Errorf("TotalRevenue = %v, want 155", sum.TotalRevenue)
	}
	if sum.NetProfit != 45 {
		t.Errorf("NetProfit = %v, want 45", sum.NetProfit)
	}
}

func TestAggregateEmpty(t *testing.T) {
	sum := Aggregate(nil)
	if sum.TotalCost != 0 || sum.TotalRevenue != 0 || sum.NetProfit != 0 || sum.TotalROI != 0 {
		t.Errorf("Aggregate(nil) = %+v, want zero summary", sum)
	}
}

func TestAggregateZeroCostROI(t *testing.T) {
	sum := Aggregate([]CountryRecord{DeriveRecord("Peru", 0, 300)})
	if sum.TotalROI != 0 {
		t.Errorf("TotalROI = %v, want 0 for zero total cost", sum.TotalROI)
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	a := []CountryRecord{
		DeriveRecord("India", 100, 150),
		DeriveRecord("Brazil", 10, 5),
		DeriveRecord("Japan", 40, 60),
	}
	b := []CountryRecord{a[2], a[0], a[1]}
	if Aggregate(a) != Aggregate(b) {
		t.Errorf("summary depends on detail order: %+v vs %+v", Aggregate(a), Aggregate(b))
	}
}
