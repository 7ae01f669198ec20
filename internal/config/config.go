// Package config reads and writes the abaco.yaml configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the production API endpoint.
const DefaultAPIURL = "https://api.abacofinance.com.br"

// Config represents the top-level abaco.yaml configuration.
type Config struct {
	API     APIConfig      `yaml:"api"`
	Polling PollingConfig  `yaml:"polling"`
	Server  ServerConfig   `yaml:"server"`
	Log     LogConfig      `yaml:"log"`
	Sensors []SensorConfig `yaml:"sensors,omitempty"`
}

// APIConfig holds the API endpoint and credentials.
type APIConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// PollingConfig controls how often sensors refresh.
type PollingConfig struct {
	Interval string `yaml:"interval"` // cron spec, e.g. "@every 5m"
}

// ServerConfig controls the hub HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SensorConfig declares an extra attribute sensor over an endpoint payload.
type SensorConfig struct {
	Endpoint string `yaml:"endpoint"`
	Path     string `yaml:"path"`
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon,omitempty"`
	Monetary bool   `yaml:"monetary,omitempty"`
	Unit     string `yaml:"unit,omitempty"`
}

// Load reads an abaco.yaml file from disk. The API token may also come
// from the ABACO_API_TOKEN environment variable, which wins over the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if token := os.Getenv("ABACO_API_TOKEN"); token != "" {
		cfg.API.Token = token
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new setup.
func Default(token string) *Config {
	return &Config{
		API: APIConfig{
			URL:   DefaultAPIURL,
			Token: token,
		},
		Polling: PollingConfig{
			Interval: "@every 5m",
		},
		Server: ServerConfig{
			Addr: ":8126",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	if c.API.Token == "" {
		return fmt.Errorf("api.token is required (or set ABACO_API_TOKEN)")
	}
	return nil
}
