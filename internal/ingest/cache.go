package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"custoplan/internal/domain/productivity"
	"custoplan/internal/platform/metrics"
)

// Loader parses workbooks and memoizes the result by content hash. The
// cache is the only shared mutable state in the system; parsed datasets
// are read-only once returned, so concurrent requests may share them.
// Saving a new workbook under the same path changes the hash and reloads
// on the next request; Invalidate drops everything explicitly.
type Loader struct {
	WorkerSheet       string
	ThirdPartySheet   string
	EarningsCatalog   []string
	DeductionsCatalog []string

	mu           sync.Mutex
	workforce    map[string]*Dataset
	productivity map[string][]productivity.Record
}

// NewLoader builds a Loader with the default sheet names and catalogs
// unless overridden on the returned value.
func NewLoader(workerSheet, thirdPartySheet string, earningsCatalog, deductionsCatalog []string) *Loader {
	return &Loader{
		WorkerSheet:       workerSheet,
		ThirdPartySheet:   thirdPartySheet,
		EarningsCatalog:   earningsCatalog,
		DeductionsCatalog: deductionsCatalog,
		workforce:         make(map[string]*Dataset),
		productivity:      make(map[string][]productivity.Record),
	}
}

func contentKey(path string) (string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read workbook %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), data, nil
}

// Workforce returns the parsed workforce workbook at path, from cache
// when the file content is unchanged.
func (l *Loader) Workforce(path string) (*Dataset, error) {
	key, data, err := contentKey(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	cached, ok := l.workforce[key]
	l.mu.Unlock()
	metrics.RecordDatasetLoad("workforce", ok)
	if ok {
		return cached, nil
	}

	dataset, err := parseWorkforceWorkbook(data, l.WorkerSheet, l.ThirdPartySheet, l.EarningsCatalog, l.DeductionsCatalog)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.workforce[key] = dataset
	l.mu.Unlock()
	return dataset, nil
}

// Productivity returns the parsed productivity workbook at path, from
// cache when the file content is unchanged.
func (l *Loader) Productivity(path string) ([]productivity.Record, error) {
	key, data, err := contentKey(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	cached, ok := l.productivity[key]
	l.mu.Unlock()
	metrics.RecordDatasetLoad("productivity", ok)
	if ok {
		return cached, nil
	}

	records, err := parseProductivityWorkbook(data)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.productivity[key] = records
	l.mu.Unlock()
	return records, nil
}

// Invalidate drops all cached parses.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.workforce = make(map[string]*Dataset)
	l.productivity = make(map[string][]productivity.Record)
}
