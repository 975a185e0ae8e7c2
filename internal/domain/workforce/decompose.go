package workforce

import (
	"math"
	"sort"
)

// Breakdown entry kinds, for the waterfall presentation.
const (
	EntryEarning   = "earning"
	EntryDeduction = "deduction"
)

// BreakdownEntry is one non-zero catalog field and its summed amount.
// Deduction amounts are positive magnitudes; the presentation layer
// renders them as decreases.
type BreakdownEntry struct {
	Field  string  `json:"field"`
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

// Decomposition is the earnings/deductions waterfall over a filtered
// worker set.
type Decomposition struct {
	TotalEarnings   float64          `json:"totalEarnings"`
	TotalDeductions float64          `json:"totalDeductions"`
	Net             float64          `json:"net"`
	Breakdown       []BreakdownEntry `json:"breakdown"`
}

// sumField sums one catalog field over the workers. present is false when
// no record carries the field at all, i.e. the column is absent from the
// loaded sheet.
func sumField(workers []Record, field string, deduction bool) (sum float64, present bool) {
	for _, record := range workers {
		fields := record.Earnings
		if deduction {
			fields = record.Deductions
		}
		if value, ok := fields[field]; ok {
			present = true
			sum += value
		}
	}
	return sum, present
}

// Decompose sums each catalog field across the workers and splits the
// result into the two waterfall buckets.
//
// Catalog fields absent from the loaded sheet contribute 0 and are
// omitted from the breakdown; that is an expected schema variation, not
// an error. Deduction sums are normalized to positive magnitude before
// subtracting, so net = totalEarnings - totalDeductions holds for every
// input, including an empty worker set where all three are 0.
func Decompose(workers []Record, earningsCatalog, deductionsCatalog []string) Decomposition {
	var result Decomposition
	result.Breakdown = make([]BreakdownEntry, 0, len(earningsCatalog)+len(deductionsCatalog))

	for _, field := range earningsCatalog {
		sum, present := sumField(workers, field, false)
		if !present {
			continue
		}
		result.TotalEarnings += sum
		if sum != 0 {
			result.Breakdown = append(result.Breakdown, BreakdownEntry{Field: field, Kind: EntryEarning, Amount: sum})
		}
	}
	for _, field := range deductionsCatalog {
		sum, present := sumField(workers, field, true)
		if !present {
			continue
		}
		magnitude := math.Abs(sum)
		result.TotalDeductions += magnitude
		if magnitude != 0 {
			result.Breakdown = append(result.Breakdown, BreakdownEntry{Field: field, Kind: EntryDeduction, Amount: magnitude})
		}
	}

	result.Net = result.TotalEarnings - result.TotalDeductions

	sort.SliceStable(result.Breakdown, func(i, j int) bool {
		return math.Abs(result.Breakdown[i].Amount) > math.Abs(result.Breakdown[j].Amount)
	})
	return result
}
