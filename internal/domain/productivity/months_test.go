package productivity

import (
	"testing"
	"time"
)

func TestMonthLabelRoundTrip(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		label := MonthLabel(time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC))
		year, parsed, err := ParseMonthLabel(label)
		if err != nil {
			t.Fatalf("round trip failed for %s: %v", label, err)
		}
		if year != 2025 || parsed != month {
			t.Fatalf("expected 2025/%d, got %d/%d from %s", month, year, parsed, label)
		}
	}
}

func TestMonthLabelFormat(t *testing.T) {
	label := MonthLabel(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	if label != "Abr/24" {
		t.Fatalf("expected Abr/24, got %s", label)
	}
}

func TestParseMonthLabelRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "Abr", "Apr/24", "Abr/xx", "Abr/2024"} {
		if _, _, err := ParseMonthLabel(label); err == nil {
			t.Fatalf("expected error for %q", label)
		}
	}
}
