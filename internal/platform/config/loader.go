package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file if CUSTOPLAN_CONFIG is set
//  3. env (prefix CUSTOPLAN_, e.g. CUSTOPLAN_ADDR, CUSTOPLAN_WORKER_SHEET)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CUSTOPLAN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("CUSTOPLAN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "custoplan_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.WorkforceWorkbook == "" || cfg.ProductivityWorkbook == "" {
		return nil, errors.New("workbook paths must not be empty")
	}
	return &cfg, nil
}
