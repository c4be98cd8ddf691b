// Package config loads settings from the environment, after an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/qyinm/folio/catalog"
	"github.com/qyinm/folio/types"
)

// DotenvPath is the file Load reads before parsing the environment.
const DotenvPath = ".env"

// Config holds the terminal gallery settings.
type Config struct {
	CatalogPath string `env:"FOLIO_CATALOG"`
	CatalogURL  string `env:"FOLIO_CATALOG_URL"`
	LogFile     string `env:"FOLIO_LOG_FILE"`
}

// Load reads DotenvPath, if present, then the environment.
func Load() (Config, error) {
	if err := LoadDotenv(DotenvPath); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Source picks where the catalog comes from: the URL when set, otherwise the
// file path. An empty path means the built-in catalog.
func (c Config) Source() types.ProjectSource {
	if url := strings.TrimSpace(c.CatalogURL); url != "" {
		return catalog.NewFetcher(url)
	}
	return catalog.FileSource{Path: strings.TrimSpace(c.CatalogPath)}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotenv sets variables from path without overriding ones already in the
// environment. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
