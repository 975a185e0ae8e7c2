package ingest

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The source workbooks were maintained by hand, so the same column shows
// up with accent and spacing variations ("Função", "Funçao", "FUNCAO").
// All header lookups go through one canonical form: trimmed, uppercased,
// accents stripped, inner whitespace collapsed. Resolution happens once
// per sheet here at the ingest boundary, never inside engine logic.

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader reduces a header cell to its canonical lookup form.
func NormalizeHeader(header string) string {
	flattened, _, err := transform.String(stripAccents, header)
	if err != nil {
		flattened = header
	}
	return strings.ToUpper(strings.Join(strings.Fields(flattened), " "))
}

// columnIndex maps canonical header forms to their column positions.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	index := make(columnIndex, len(header))
	for i, cell := range header {
		key := NormalizeHeader(cell)
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func (c columnIndex) cell(row []string, header string) (string, bool) {
	i, ok := c[NormalizeHeader(header)]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// CoerceNumber parses a spreadsheet cell as a decimal. It accepts plain
// floats and pt-BR formatting ("1.234,56", "R$ 1.234,56"). Anything
// unparsable, including blank, is 0 so downstream math never sees NaN.
func CoerceNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// CoerceQuantity parses a non-negative integer count. Unparsable or
// negative values are 0.
func CoerceQuantity(raw string) int {
	value := int(CoerceNumber(raw))
	if value < 0 {
		return 0
	}
	return value
}
