package workforce

import "strings"

// ParseCategory maps the raw marker column to an employment category.
// Matching is case-insensitive and trim-normalized; anything unrecognized
// becomes CategoryUndefined rather than an error, so one bad row never
// blocks a load.
func ParseCategory(marker string) Category {
	switch strings.ToUpper(strings.TrimSpace(marker)) {
	case "DIRETO", "DIRECT":
		return CategoryDirect
	case "INDIRETO", "INDIRECT":
		return CategoryIndirect
	default:
		return CategoryUndefined
	}
}
