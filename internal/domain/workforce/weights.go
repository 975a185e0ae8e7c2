package workforce

import "sort"

// WeightKind selects which cost-control ratio to compute.
type WeightKind string

const (
	WeightProduction WeightKind = "PRODUCTION"
	WeightOvertime   WeightKind = "OVERTIME"
)

// SiteWeight is one site's ratio index. Selected marks whether the site
// is part of the current site selection; the chart highlights selected
// sites instead of hiding the rest.
type SiteWeight struct {
	Site     string  `json:"site"`
	Index    float64 `json:"index"`
	Selected bool    `json:"isSelected"`
}

type weightSums struct {
	numerator   float64
	denominator float64
}

// ComputeWeights computes the per-site weight index over every site
// present in the data, deliberately ignoring the site filter.
//
// WeightProduction restricts to DIRECT records and relates production
// plus its bonus to total net remuneration; production is attributed to
// direct labor only. WeightOvertime covers DIRECT and INDIRECT, since
// overtime cost is shared across both categories. A zero denominator
// yields index 0: no remuneration means no signal, not an error.
func ComputeWeights(workers []Record, siteSelection []string, kind WeightKind) []SiteWeight {
	sums := make(map[string]*weightSums)
	for _, record := range workers {
		if _, ok := sums[record.Site]; !ok {
			sums[record.Site] = &weightSums{}
		}
		entry := sums[record.Site]

		switch kind {
		case WeightProduction:
			if record.Category != CategoryDirect {
				continue
			}
			entry.numerator += record.Production + record.ProductionBonus
		case WeightOvertime:
			if record.Category != CategoryDirect && record.Category != CategoryIndirect {
				continue
			}
			entry.numerator += record.OvertimeWeekday + record.OvertimeSaturday + record.PaidRest
		default:
			continue
		}
		entry.denominator += record.TotalNet()
	}

	selection := Selection{Sites: siteSelection}
	out := make([]SiteWeight, 0, len(sums))
	for site, entry := range sums {
		index := 0.0
		if entry.denominator != 0 {
			index = entry.numerator / entry.denominator
		}
		out = append(out, SiteWeight{
			Site:     site,
			Index:    index,
			Selected: selection.SiteSelected(site),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Index == out[j].Index {
			return out[i].Site < out[j].Site
		}
		return out[i].Index > out[j].Index
	})
	return out
}
