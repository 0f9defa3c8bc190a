package hn

import (
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// Config holds client settings. Defaults come from DefaultConfig; a YAML
// file and the environment overlay them in that order, so environment
// values win.
type Config struct {
	// BaseURL is the API root. ENV: HNSHAPE_BASE_URL
	BaseURL string `env:"HNSHAPE_BASE_URL" yaml:"baseUrl"`
	// Timeout applies per HTTP request. ENV: HNSHAPE_TIMEOUT
	Timeout time.Duration `env:"HNSHAPE_TIMEOUT" yaml:"timeout"`
	// Limit is how many top items to fetch. ENV: HNSHAPE_LIMIT
	Limit int `env:"HNSHAPE_LIMIT" yaml:"limit"`
}

// UnmarshalYAML accepts timeout as a duration string ("30s") and leaves
// fields absent from the document untouched.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL *string `yaml:"baseUrl"`
		Timeout *string `yaml:"timeout"`
		Limit   *int    `yaml:"limit"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.BaseURL != nil {
		c.BaseURL = *raw.BaseURL
	}
	if raw.Timeout != nil {
		d, err := time.ParseDuration(*raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", *raw.Timeout, err)
		}
		c.Timeout = d
	}
	if raw.Limit != nil {
		c.Limit = *raw.Limit
	}
	return nil
}

// DefaultConfig returns the baseline settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
		Limit:   15,
	}
}

// ConfigFromEnv populates a Config from the environment on top of defaults.
// Unset variables keep their default values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	// envdecode errors when no tagged variable is set; defaults already cover that
	_ = envdecode.Decode(&cfg)
	return cfg
}

// ReadConfig loads a Config from a YAML file, then overlays environment
// values on top.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf(`hn: read config file "%s": %w`, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(`hn: unmarshal config file "%s": %w`, path, err)
	}
	_ = envdecode.Decode(&cfg)
	return cfg, nil
}

// NewClientFromConfig builds a Client from a Config.
func NewClientFromConfig(cfg Config) *Client {
	opts := []Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}
	return NewClient(opts...)
}
