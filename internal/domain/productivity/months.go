package productivity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month labels use Portuguese abbreviations plus a two-digit year,
// e.g. "Abr/25". The UI re-derives its month filter from selected
// labels, so the mapping has to be invertible; both directions go
// through the same fixed 12-entry table.

var monthAbbrev = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

var monthNumber = map[string]time.Month{}

func init() {
	for i, abbrev := range monthAbbrev {
		monthNumber[abbrev] = time.Month(i + 1)
	}
}

// MonthLabel formats the month of t as a localized label.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", monthAbbrev[int(t.Month())-1], t.Year()%100)
}

// ParseMonthLabel is the inverse of MonthLabel. Two-digit years resolve
// to 2000-2099.
func ParseMonthLabel(label string) (int, time.Month, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month label %q", label)
	}
	month, ok := monthNumber[parts[0]]
	if !ok {
		return 0, 0, fmt.Errorf("unknown month abbreviation %q", parts[0])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 0 || year > 99 {
		return 0, 0, fmt.Errorf("invalid year in month label %q", label)
	}
	return 2000 + year, month, nil
}
