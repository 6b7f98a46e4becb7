package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Signing SigningConfig `yaml:"signing"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects the record store backend. Driver "memory" is the
// fixture-seeded demo backend; "sqlite" is durable.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	// Latency simulates per-operation store delay on the memory backend.
	Latency time.Duration `yaml:"latency"`
}

// SigningConfig controls the public signing surface.
type SigningConfig struct {
	// BaseURL is the public origin minted signing links point at.
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: StoreConfig{
			Driver: "memory",
			Path:   "fieldbook.db",
		},
		Signing: SigningConfig{
			BaseURL: "http://localhost:8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("FIELDBOOK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("FIELDBOOK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("FIELDBOOK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FIELDBOOK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if driver := os.Getenv("FIELDBOOK_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if path := os.Getenv("FIELDBOOK_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if latencyStr := os.Getenv("FIELDBOOK_STORE_LATENCY"); latencyStr != "" {
		latency, err := time.ParseDuration(latencyStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FIELDBOOK_STORE_LATENCY: %w", err)
		}
		cfg.Store.Latency = latency
	}
	if baseURL := os.Getenv("FIELDBOOK_SIGNING_BASE_URL"); baseURL != "" {
		cfg.Signing.BaseURL = baseURL
	}
	if level := os.Getenv("FIELDBOOK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Store.Driver != "memory" && cfg.Store.Driver != "sqlite" {
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
