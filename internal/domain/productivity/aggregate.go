package productivity

import (
	"sort"
	"time"
)

// Query is the immutable filter state for one aggregation. Empty
// SiteType or Service means no restriction on that dimension. An empty
// Months selection also means no restriction; the alternative reading
// (empty selection shows nothing) makes a bare query string useless, so
// the open question was pinned to "no restriction". Labels that do not
// parse are ignored.
type Query struct {
	SiteType string
	Service  string
	Months   []string
}

// MonthlyPoint is one month's real-vs-budget mean pair.
type MonthlyPoint struct {
	Month        string  `json:"month"`
	MeanActual   float64 `json:"meanActual"`
	MeanBudgeted float64 `json:"meanBudgeted"`
}

// SiteTypeMean is the mean measured productivity for one site type.
type SiteTypeMean struct {
	SiteType   string  `json:"siteType"`
	MeanActual float64 `json:"meanActual"`
}

// Result holds both productivity views.
type Result struct {
	Monthly    []MonthlyPoint `json:"monthly"`
	BySiteType []SiteTypeMean `json:"bySiteType"`
}

type monthKey struct {
	year  int
	month time.Month
}

func (q Query) allowedMonths() map[monthKey]bool {
	if len(q.Months) == 0 {
		return nil
	}
	allowed := make(map[monthKey]bool, len(q.Months))
	for _, label := range q.Months {
		year, month, err := ParseMonthLabel(label)
		if err != nil {
			continue
		}
		allowed[monthKey{year, month}] = true
	}
	if len(allowed) == 0 {
		return nil
	}
	return allowed
}

func (q Query) matches(record Record, allowed map[monthKey]bool, applySiteType bool) bool {
	if applySiteType && q.SiteType != "" && record.SiteType != q.SiteType {
		return false
	}
	if q.Service != "" && record.ServiceType != q.Service {
		return false
	}
	if allowed != nil && !allowed[monthKey{record.Date.Year(), record.Date.Month()}] {
		return false
	}
	return true
}

// Aggregate computes the monthly real-vs-budget means and the per-site-type
// means for the query.
//
// Monthly is ordered chronologically. BySiteType skips the site-type
// filter on purpose: the secondary chart compares the selected service
// across every site type even while the primary chart focuses on one.
// Empty groups simply do not appear; no mean over zero rows is emitted.
func Aggregate(records []Record, q Query) Result {
	allowed := q.allowedMonths()

	type monthSums struct {
		actual   float64
		budgeted float64
		count    int
	}
	months := make(map[monthKey]*monthSums)
	siteTypes := make(map[string]*monthSums)

	for _, record := range records {
		if q.matches(record, allowed, false) {
			key := record.SiteType
			if _, ok := siteTypes[key]; !ok {
				siteTypes[key] = &monthSums{}
			}
			siteTypes[key].actual += record.Actual
			siteTypes[key].count++
		}
		if !q.matches(record, allowed, true) {
			continue
		}
		key := monthKey{record.Date.Year(), record.Date.Month()}
		if _, ok := months[key]; !ok {
			months[key] = &monthSums{}
		}
		months[key].actual += record.Actual
		months[key].budgeted += record.Budgeted
		months[key].count++
	}

	var result Result
	result.Monthly = make([]MonthlyPoint, 0, len(months))
	keys := make([]monthKey, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year == keys[j].year {
			return keys[i].month < keys[j].month
		}
		return keys[i].year < keys[j].year
	})
	for _, key := range keys {
		sums := months[key]
		result.Monthly = append(result.Monthly, MonthlyPoint{
			Month:        MonthLabel(time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC)),
			MeanActual:   sums.actual / float64(sums.count),
			MeanBudgeted: sums.budgeted / float64(sums.count),
		})
	}

	result.BySiteType = make([]SiteTypeMean, 0, len(siteTypes))
	names := make([]string, 0, len(siteTypes))
	for name := range siteTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sums := siteTypes[name]
		result.BySiteType = append(result.BySiteType, SiteTypeMean{
			SiteType:   name,
			MeanActual: sums.actual / float64(sums.count),
		})
	}
	return result
}

// MonthLabels returns the distinct month labels present in the records,
// chronologically ordered, for the month filter UI.
func MonthLabels(records []Record) []string {
	seen := make(map[monthKey]bool)
	for _, record := range records {
		seen[monthKey{record.Date.Year(), record.Date.Month()}] = true
	}
	keys := make([]monthKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year == keys[j].year {
			return keys[i].month < keys[j].month
		}
		return keys[i].year < keys[j].year
	})
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		labels = append(labels, MonthLabel(time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC)))
	}
	return labels
}
