package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // property package file
	Format     string // "hcl", "yaml", or "" for by-extension detection

	LogFormat string
	LogLevel  string
}

// NewConfig validates an App configuration, resolving the file format from
// the path extension when unset.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		switch strings.ToLower(filepath.Ext(cfg.ConfigPath)) {
		case ".hcl":
			cfg.Format = "hcl"
		case ".yaml", ".yml":
			cfg.Format = "yaml"
		default:
			return nil, fmt.Errorf("cannot detect format from extension of %q; pass -format", cfg.ConfigPath)
		}
	}
	if cfg.Format != "hcl" && cfg.Format != "yaml" {
		return nil, fmt.Errorf("unsupported format %q: must be 'hcl' or 'yaml'", cfg.Format)
	}

	return &cfg, nil
}
