package workforce

import "sort"

// CategoryFilter selects which employment categories a view is scoped to.
type CategoryFilter string

const (
	FilterAll        CategoryFilter = "ALL"
	FilterDirect     CategoryFilter = "DIRECT"
	FilterIndirect   CategoryFilter = "INDIRECT"
	FilterThirdParty CategoryFilter = "THIRD_PARTY"
)

// Selection is the immutable filter state passed into every computation.
// An empty Sites slice means every site.
type Selection struct {
	Sites    []string
	Category CategoryFilter
}

// SiteSelected reports whether site is part of the selection.
func (s Selection) SiteSelected(site string) bool {
	if len(s.Sites) == 0 {
		return true
	}
	for _, candidate := range s.Sites {
		if candidate == site {
			return true
		}
	}
	return false
}

// Filter applies the site and category selection to both workforce tables.
//
// The site filter applies identically to worker records and third-party
// aggregates. The category filter only ever narrows worker records:
// third parties have no per-person rows, so FilterThirdParty forces the
// worker side empty while leaving the third-party table untouched
// (it is still narrowed by site). Filter is pure and total; it returns
// possibly empty slices, never an error.
func Filter(workers []Record, thirdParty []ThirdParty, sel Selection) ([]Record, []ThirdParty) {
	filteredThirdParty := make([]ThirdParty, 0, len(thirdParty))
	for _, row := range thirdParty {
		if sel.SiteSelected(row.Site) {
			filteredThirdParty = append(filteredThirdParty, row)
		}
	}

	filteredWorkers := make([]Record, 0, len(workers))
	if sel.Category == FilterThirdParty {
		return filteredWorkers, filteredThirdParty
	}
	for _, record := range workers {
		if !sel.SiteSelected(record.Site) {
			continue
		}
		switch sel.Category {
		case FilterDirect:
			if record.Category != CategoryDirect {
				continue
			}
		case FilterIndirect:
			if record.Category != CategoryIndirect {
				continue
			}
		}
		filteredWorkers = append(filteredWorkers, record)
	}
	return filteredWorkers, filteredThirdParty
}

// Sites returns the distinct sites present in either table, sorted, for
// filter UIs.
func Sites(workers []Record, thirdParty []ThirdParty) []string {
	seen := make(map[string]bool)
	for _, record := range workers {
		seen[record.Site] = true
	}
	for _, row := range thirdParty {
		seen[row.Site] = true
	}
	out := make([]string, 0, len(seen))
	for site := range seen {
		out = append(out, site)
	}
	sort.Strings(out)
	return out
}
