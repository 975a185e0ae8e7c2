package workforce

import "sort"

// Headcount is the summary metric row: per-category counts for the
// selected sites plus the third-party quantity total. Total also counts
// UNDEFINED worker records, so the grand total never loses rows to a bad
// category marker.
type Headcount struct {
	Direct     int `json:"direct"`
	Indirect   int `json:"indirect"`
	ThirdParty int `json:"thirdParty"`
	Total      int `json:"total"`
}

// CountHeads computes the headcount summary for the selected sites. The
// category filter is intentionally not applied; the summary row always
// shows the whole selected population.
func CountHeads(workers []Record, thirdParty []ThirdParty, sites []string) Headcount {
	selection := Selection{Sites: sites}
	var head Headcount
	for _, record := range workers {
		if !selection.SiteSelected(record.Site) {
			continue
		}
		head.Total++
		switch record.Category {
		case CategoryDirect:
			head.Direct++
		case CategoryIndirect:
			head.Indirect++
		}
	}
	for _, row := range thirdParty {
		if selection.SiteSelected(row.Site) {
			head.ThirdParty += row.Quantity
		}
	}
	head.Total += head.ThirdParty
	return head
}

// CompanyCount is the third-party table row: outsourced quantity per
// company per site.
type CompanyCount struct {
	Site     string `json:"site"`
	Company  string `json:"company"`
	Quantity int    `json:"quantity"`
}

// GroupThirdParty sums third-party quantities by (site, company),
// sorted by site then company.
func GroupThirdParty(rows []ThirdParty) []CompanyCount {
	type key struct {
		site    string
		company string
	}
	sums := make(map[key]int)
	for _, row := range rows {
		sums[key{row.Site, row.Company}] += row.Quantity
	}
	out := make([]CompanyCount, 0, len(sums))
	for k, quantity := range sums {
		out = append(out, CompanyCount{Site: k.site, Company: k.company, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Site == out[j].Site {
			return out[i].Company < out[j].Company
		}
		return out[i].Site < out[j].Site
	})
	return out
}
