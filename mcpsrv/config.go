package mcpsrv

import (
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/folio/config"
)

const (
	defaultRPS   = 2
	defaultBurst = 5
)

type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	AllowedOrigins     []string      `env:"FOLIO_MCP_ALLOWED_ORIGINS" envSeparator:","`
	Stateless          bool          `env:"FOLIO_MCP_STATELESS"`
	EnableSearch       bool          `env:"FOLIO_MCP_ENABLE_SEARCH"`
	EnableAdmin        bool          `env:"FOLIO_MCP_ENABLE_ADMIN"`
	APIKey             string        `env:"FOLIO_MCP_API_KEY"`
	RPS                float64       `env:"FOLIO_MCP_RPS" envDefault:"2"`
	Burst              int           `env:"FOLIO_MCP_BURST" envDefault:"5"`
	SessionTimeout     time.Duration `env:"FOLIO_MCP_SESSION_TIMEOUT" envDefault:"15m"`
	CacheClearInterval time.Duration `env:"FOLIO_MCP_CACHE_CLEAR_INTERVAL" envDefault:"30m"`
}

// LoadConfig reads the server settings from .env and the environment.
func LoadConfig() (Config, error) {
	if err := config.LoadDotenv(config.DotenvPath); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.sanitize(), nil
}

func (c Config) sanitize() Config {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.AllowedOrigins = compact(c.AllowedOrigins)
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	if c.Burst <= 0 {
		c.Burst = defaultBurst
	}
	return c
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
