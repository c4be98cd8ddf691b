package mcpsrv

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "FOLIO_MCP_ALLOWED_ORIGINS", "FOLIO_MCP_STATELESS", "FOLIO_MCP_API_KEY",
		"FOLIO_MCP_RPS", "FOLIO_MCP_BURST", "FOLIO_MCP_SESSION_TIMEOUT", "FOLIO_MCP_CACHE_CLEAR_INTERVAL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.RPS != defaultRPS || cfg.Burst != defaultBurst {
		t.Fatalf("unexpected limits: rps=%v burst=%d", cfg.RPS, cfg.Burst)
	}
	if cfg.SessionTimeout != 15*time.Minute || cfg.CacheClearInterval != 30*time.Minute {
		t.Fatalf("unexpected durations: %v %v", cfg.SessionTimeout, cfg.CacheClearInterval)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FOLIO_MCP_ALLOWED_ORIGINS", "https://a.example, ,https://b.example ")
	t.Setenv("FOLIO_MCP_STATELESS", "true")
	t.Setenv("FOLIO_MCP_ENABLE_SEARCH", "true")
	t.Setenv("FOLIO_MCP_API_KEY", " secret ")
	t.Setenv("FOLIO_MCP_RPS", "0")
	t.Setenv("FOLIO_MCP_BURST", "-3")
	t.Setenv("FOLIO_MCP_SESSION_TIMEOUT", "1m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || !cfg.Stateless || !cfg.EnableSearch {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("api key not trimmed: %q", cfg.APIKey)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %q", cfg.AllowedOrigins)
	}
	if cfg.RPS != defaultRPS || cfg.Burst != defaultBurst {
		t.Fatalf("non-positive limits should fall back: rps=%v burst=%d", cfg.RPS, cfg.Burst)
	}
	if cfg.SessionTimeout != time.Minute {
		t.Fatalf("unexpected session timeout %v", cfg.SessionTimeout)
	}
}

func TestLoadConfigInvalidValue(t *testing.T) {
	t.Setenv("FOLIO_MCP_BURST", "lots")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected an error for a non-numeric burst")
	}
}

type countingCache struct {
	clears atomic.Int32
}

func (c *countingCache) ClearCache() { c.clears.Add(1) }

func TestStartCacheJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if StartCacheJanitor(ctx, struct{}{}, time.Millisecond, nil) {
		t.Fatal("a source without a cache should not start a janitor")
	}
	cache := &countingCache{}
	if StartCacheJanitor(ctx, cache, 0, nil) {
		t.Fatal("a zero interval should not start a janitor")
	}
	if !StartCacheJanitor(ctx, cache, 5*time.Millisecond, nil) {
		t.Fatal("expected the janitor to start")
	}

	deadline := time.Now().Add(time.Second)
	for cache.clears.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("cache was never cleared")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
