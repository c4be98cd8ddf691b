package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qyinm/folio/catalog"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("FOLIO_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("FOLIO_CATALOG_URL", "")
	t.Setenv("FOLIO_LOG_FILE", "debug.log")

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CatalogPath != "/tmp/catalog.yaml" || cfg.LogFile != "debug.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadDotenvKeepsEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "FOLIO_LOG_FILE=from-file.log\nFOLIO_TEST_ONLY=set-by-file\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("FOLIO_LOG_FILE", "from-env.log")
	t.Setenv("FOLIO_TEST_ONLY", "")
	os.Unsetenv("FOLIO_TEST_ONLY")

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("FOLIO_LOG_FILE"); got != "from-env.log" {
		t.Fatalf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("FOLIO_TEST_ONLY"); got != "set-by-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
}

func TestSource(t *testing.T) {
	remote := Config{CatalogURL: " https://example.com/catalog.yaml ", CatalogPath: "ignored.yaml"}
	f, ok := remote.Source().(*catalog.Fetcher)
	if !ok {
		t.Fatalf("expected *catalog.Fetcher, got %T", remote.Source())
	}
	if f.URL() != "https://example.com/catalog.yaml" {
		t.Fatalf("unexpected url %q", f.URL())
	}

	local := Config{CatalogPath: "testdata/catalog.yaml"}
	fs, ok := local.Source().(catalog.FileSource)
	if !ok {
		t.Fatalf("expected catalog.FileSource, got %T", local.Source())
	}
	if fs.Path != "testdata/catalog.yaml" {
		t.Fatalf("unexpected path %q", fs.Path)
	}
}
