// Package config loads operational settings from an optional YAML file, an
// optional .env file and VAULTMAP_* environment variables, in increasing
// order of precedence.
//
// Glyph choices are never stored here; every run asks afresh.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given, if it exists.
const DefaultPath = "vaultmap.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VAULTMAP_"

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	HTTP     HTTPConfig   `mapstructure:"http"`
	MCP      MCPConfig    `mapstructure:"mcp"`
	Redis    RedisConfig  `mapstructure:"redis"`
	Cache    CacheConfig  `mapstructure:"cache"`
	Parse    ParseConfig  `mapstructure:"parse"`
	Prompt   PromptConfig `mapstructure:"prompt"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig selects where the HTTP and MCP servers keep rendered maps.
// Backend is "memory", "redis" or "none".
type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type ParseConfig struct {
	Lenient bool `mapstructure:"lenient"`
}

type PromptConfig struct {
	Color bool `mapstructure:"color"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		HTTP:     HTTPConfig{Addr: ":8080"},
		MCP:      MCPConfig{Transport: "stdio", Port: 8081},
		Cache:    CacheConfig{Backend: "memory", TTL: time.Hour},
		Prompt:   PromptConfig{Color: true},
	}
}

// envKeys maps environment variables (without prefix) to config paths.
var envKeys = map[string][]string{
	"LOG_LEVEL":      {"log_level"},
	"HTTP_ADDR":      {"http", "addr"},
	"MCP_TRANSPORT":  {"mcp", "transport"},
	"MCP_PORT":       {"mcp", "port"},
	"REDIS_ADDR":     {"redis", "addr"},
	"REDIS_PASSWORD": {"redis", "password"},
	"REDIS_DB":       {"redis", "db"},
	"CACHE_BACKEND":  {"cache", "backend"},
	"CACHE_TTL":      {"cache", "ttl"},
	"PARSE_LENIENT":  {"parse", "lenient"},
	"PROMPT_COLOR":   {"prompt", "color"},
}

// Load builds the configuration. An empty path falls back to DefaultPath and
// tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	overlayEnv(raw, os.LookupEnv)

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadDotEnv loads a .env file if present. Variables already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func overlayEnv(raw map[string]any, lookup func(string) (string, bool)) {
	for key, path := range envKeys {
		val, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		node := raw
		for _, p := range path[:len(path)-1] {
			next, ok := node[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				node[p] = next
			}
			node = next
		}
		node[path[len(path)-1]] = strings.TrimSpace(val)
	}
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
