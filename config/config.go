package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds source-site and post-extraction filter settings.
type Config struct {
	Source struct {
		BaseURL      string `yaml:"base_url"`
		UserAgent    string `yaml:"user_agent"`
		Fetcher      string `yaml:"fetcher"`       // resty, colly or rod
		DelaySeconds int    `yaml:"delay_seconds"` // colly per-domain delay
		Concurrency  int    `yaml:"concurrency"`   // race-history page fetches in flight
	} `yaml:"source"`
	Filters struct {
		Season         string  `yaml:"season"`
		Classification string  `yaml:"classification"`
		MinDistance    float64 `yaml:"min_distance"`
	} `yaml:"filters"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// GetDefaultConfig returns a default configuration.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Source.BaseURL = "https://www.procyclingstats.com"
	cfg.Source.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.Source.Fetcher = "resty"
	cfg.Source.DelaySeconds = 4
	cfg.Source.Concurrency = 1
	return cfg
}
