package main

import (
	"os"

	"github.com/jarvis322/namescan"
	"gopkg.in/yaml.v3"
)

// Config holds defaults that flags override. All fields are optional;
// zero values fall back to built-in defaults at wiring time.
type Config struct {
	// IndexURL overrides the live document index page.
	IndexURL string `yaml:"index_url"`

	// Window is the default context radius in characters.
	Window int `yaml:"window"`

	// Concurrency is the default concurrent document limit.
	Concurrency int `yaml:"concurrency"`

	// TimeoutSeconds is the default per-request timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// RatePerHost is the fetch rate limit in requests per second.
	RatePerHost float64 `yaml:"rate_per_host"`

	// Names are always added to the dictionary.
	Names []string `yaml:"names"`

	// NamesFile is a CSV file of additional names.
	NamesFile string `yaml:"names_file"`

	// DBPath overrides the database location. The NAMESCAN_DB
	// environment variable takes precedence.
	DBPath string `yaml:"db_path"`
}

// LoadConfig reads a YAML config file. A missing path returns an empty
// config rather than an error so the flag stays optional.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "cannot read config file %q: %v", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "cannot parse config file %q: %v", path, err)
	}
	return &cfg, nil
}
