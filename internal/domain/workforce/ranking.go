package workforce

import "sort"

// Metric selects which column a ranking is built on.
type Metric string

const (
	MetricProduction       Metric = "PRODUCTION"
	MetricOvertimeWeekday  Metric = "OVERTIME_WEEKDAY"
	MetricOvertimeSaturday Metric = "OVERTIME_SATURDAY"
)

// TopAll disables truncation.
const TopAll = 0

// RankedRow is one leaderboard entry. ProductionBonus is only populated
// for MetricProduction; the bonus has no meaning next to overtime values.
type RankedRow struct {
	Site            string  `json:"site"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	Value           float64 `json:"value"`
	ProductionBonus float64 `json:"productionBonus,omitempty"`
}

// Ranking is a truncated leaderboard plus the total over the full
// filtered population, so the displayed total stays honest when the
// table is cut to top-N.
type Ranking struct {
	Rows  []RankedRow `json:"rows"`
	Total float64     `json:"total"`
}

func metricValue(record Record, metric Metric) float64 {
	switch metric {
	case MetricProduction:
		return record.Production
	case MetricOvertimeWeekday:
		return record.OvertimeWeekday
	case MetricOvertimeSaturday:
		return record.OvertimeSaturday
	}
	return 0
}

// Rank builds the top-N leaderboard for the given metric.
//
// Records with a zero or negative metric value are excluded, as are
// UNDEFINED-category records: a top performer list only covers direct
// and indirect labor. The sort is stable descending, so ties keep the
// input order and output is deterministic. topN <= 0 means no
// truncation.
func Rank(workers []Record, metric Metric, topN int) Ranking {
	rows := make([]RankedRow, 0, len(workers))
	total := 0.0
	for _, record := range workers {
		if record.Category != CategoryDirect && record.Category != CategoryIndirect {
			continue
		}
		value := metricValue(record, metric)
		if value <= 0 {
			continue
		}
		total += value
		row := RankedRow{
			Site:  record.Site,
			Name:  record.Name,
			Role:  record.Role,
			Value: value,
		}
		if metric == MetricProduction {
			row.ProductionBonus = record.ProductionBonus
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return Ranking{Rows: rows, Total: total}
}
