// Package shared holds query-string parsing helpers used by every
// handler package.
package shared

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"custoplan/internal/domain/workforce"
)

// ParseList splits a comma-separated query parameter, dropping empty
// entries. A missing parameter yields nil, which every engine component
// reads as "no restriction".
func ParseList(r *http.Request, name string) []string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseCategory reads the category parameter. Absent means ALL.
func ParseCategory(r *http.Request) (workforce.CategoryFilter, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	switch raw {
	case "", "all":
		return workforce.FilterAll, nil
	case "direct":
		return workforce.FilterDirect, nil
	case "indirect":
		return workforce.FilterIndirect, nil
	case "third_party":
		return workforce.FilterThirdParty, nil
	}
	return "", fmt.Errorf("category must be all, direct, indirect or third_party")
}

// ParseMetric reads the ranking metric parameter. Absent means
// production.
func ParseMetric(r *http.Request) (workforce.Metric, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("metric")))
	switch raw {
	case "", "production":
		return workforce.MetricProduction, nil
	case "overtime_weekday":
		return workforce.MetricOvertimeWeekday, nil
	case "overtime_saturday":
		return workforce.MetricOvertimeSaturday, nil
	}
	return "", fmt.Errorf("metric must be production, overtime_weekday or overtime_saturday")
}

// ParseWeightKind reads the weight index kind. Absent means production.
func ParseWeightKind(r *http.Request) (workforce.WeightKind, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind")))
	switch raw {
	case "", "production":
		return workforce.WeightProduction, nil
	case "overtime":
		return workforce.WeightOvertime, nil
	}
	return "", fmt.Errorf("kind must be production or overtime")
}

// ParseTop reads the top-N truncation: a positive integer or "all".
// Absent falls back to the configured default.
func ParseTop(r *http.Request, fallback int) (int, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("top")))
	if raw == "" {
		return fallback, nil
	}
	if raw == "all" {
		return workforce.TopAll, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("top must be a positive integer or all")
	}
	return value, nil
}
