package productivity

import (
	"math"
	"testing"
	"time"
)

func day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []Record {
	return []Record{
		{SiteType: "Residencial", ServiceType: "Alvenaria", Date: day(2025, time.March, 3), Actual: 10, Budgeted: 12},
		{SiteType: "Residencial", ServiceType: "Alvenaria", Date: day(2025, time.March, 20), Actual: 14, Budgeted: 12},
		{SiteType: "Comercial", ServiceType: "Alvenaria", Date: day(2025, time.March, 10), Actual: 20, Budgeted: 18},
		{SiteType: "Residencial", ServiceType: "Alvenaria", Date: day(2025, time.April, 5), Actual: 16, Budgeted: 15},
		{SiteType: "Residencial", ServiceType: "Pintura", Date: day(2025, time.April, 6), Actual: 99, Budgeted: 90},
	}
}

func TestAggregateMonthlyMeans(t *testing.T) {
	result := Aggregate(sampleRecords(), Query{Service: "Alvenaria"})
	if len(result.Monthly) != 2 {
		t.Fatalf("expected 2 months, got %d", len(result.Monthly))
	}
	march := result.Monthly[0]
	if march.Month != "Mar/25" {
		t.Fatalf("expected chronological order starting Mar/25, got %s", march.Month)
	}
	if math.Abs(march.MeanActual-(10+14+20)/3.0) > 1e-9 {
		t.Fatalf("unexpected March mean: %v", march.MeanActual)
	}
	if math.Abs(march.MeanBudgeted-14) > 1e-9 {
		t.Fatalf("unexpected March budget mean: %v", march.MeanBudgeted)
	}
}

func TestAggregateBySiteTypeIgnoresSiteTypeFilter(t *testing.T) {
	result := Aggregate(sampleRecords(), Query{SiteType: "Residencial", Service: "Alvenaria"})
	if len(result.BySiteType) != 2 {
		t.Fatalf("bySiteType must cover every site type, got %+v", result.BySiteType)
	}
	// monthly view is still narrowed to the selected site type
	if math.Abs(result.Monthly[0].MeanActual-12) > 1e-9 {
		t.Fatalf("expected Residencial-only March mean 12, got %v", result.Monthly[0].MeanActual)
	}
}

func TestAggregateEmptyMonthSelectionMeansNoRestriction(t *testing.T) {
	unrestricted := Aggregate(sampleRecords(), Query{})
	if len(unrestricted.Monthly) != 2 {
		t.Fatalf("empty month selection must keep all months, got %d", len(unrestricted.Monthly))
	}
}

func TestAggregateMonthSelection(t *testing.T) {
	result := Aggregate(sampleRecords(), Query{Months: []string{"Abr/25"}})
	if len(result.Monthly) != 1 || result.Monthly[0].Month != "Abr/25" {
		t.Fatalf("expected only Abr/25, got %+v", result.Monthly)
	}
}

func TestAggregateIgnoresUnparsableLabels(t *testing.T) {
	result := Aggregate(sampleRecords(), Query{Months: []string{"Mar/25", "bogus"}})
	if len(result.Monthly) != 1 || result.Monthly[0].Month != "Mar/25" {
		t.Fatalf("bad labels must be ignored, got %+v", result.Monthly)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	result := Aggregate(nil, Query{})
	if len(result.Monthly) != 0 || len(result.BySiteType) != 0 {
		t.Fatalf("expected empty groups, got %+v", result)
	}
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(sampleRecords())
	if len(labels) != 2 || labels[0] != "Mar/25" || labels[1] != "Abr/25" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}
