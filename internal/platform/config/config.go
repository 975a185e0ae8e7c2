// Package config defines service configuration and its loading order.
package config

import (
	"custoplan/internal/domain/workforce"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkforceWorkbook is the path to the payroll/headcount workbook.
	WorkforceWorkbook string `koanf:"workforce_workbook"`

	// ProductivityWorkbook is the path to the productivity workbook.
	ProductivityWorkbook string `koanf:"productivity_workbook"`

	// WorkerSheet and ThirdPartySheet name the tabs inside the
	// workforce workbook.
	WorkerSheet     string `koanf:"worker_sheet"`
	ThirdPartySheet string `koanf:"third_party_sheet"`

	// EarningsCatalog and DeductionsCatalog override the default payroll
	// rubric lists when a tenant's sheets use different columns.
	EarningsCatalog   []string `koanf:"earnings_catalog"`
	DeductionsCatalog []string `koanf:"deductions_catalog"`

	// DefaultTopN is the ranking truncation used when the request does
	// not ask for one. 0 disables truncation.
	DefaultTopN int `koanf:"default_top_n"`

	// MetricsEnabled exposes /metrics when true.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New returns the configuration defaults.
func New() *Config {
	return &Config{
		Addr:                 ":8080",
		LogLevel:             "info",
		WorkforceWorkbook:    "data/efetivo.xlsx",
		ProductivityWorkbook: "data/produtividade.xlsx",
		WorkerSheet:          "EFETIVO",
		ThirdPartySheet:      "TERCEIROS",
		EarningsCatalog:      workforce.DefaultEarningsCatalog,
		DeductionsCatalog:    workforce.DefaultDeductionsCatalog,
		DefaultTopN:          10,
		MetricsEnabled:       true,
	}
}
