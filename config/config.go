package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration. Fields left unset in the file keep
// their defaults.
type Config struct {
	Addr            string
	DataFile        string
	RedisAddr       string
	GracePeriodDays int
	RateLimit       int
	RateWindow      time.Duration
}

// fileConfig is the YAML shape; durations are strings like "30s".
type fileConfig struct {
	Addr            string `yaml:"addr"`
	DataFile        string `yaml:"data_file"`
	RedisAddr       string `yaml:"redis_addr"`
	GracePeriodDays int    `yaml:"grace_period_days"`
	RateLimit       int    `yaml:"rate_limit"`
	RateWindow      string `yaml:"rate_window"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:            ":8080",
		DataFile:        "/tmp/loan_data.json",
		GracePeriodDays: 30,
		RateLimit:       5,
		RateWindow:      time.Minute,
	}
}

// Load reads a YAML config file and fills unset fields with defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.DataFile != "" {
		cfg.DataFile = fc.DataFile
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.GracePeriodDays > 0 {
		cfg.GracePeriodDays = fc.GracePeriodDays
	}
	if fc.RateLimit > 0 {
		cfg.RateLimit = fc.RateLimit
	}
	if fc.RateWindow != "" {
		window, err := time.ParseDuration(fc.RateWindow)
		if err != nil {
			return Config{}, fmt.Errorf("parsing config %q: invalid rate_window: %w", path, err)
		}
		cfg.RateWindow = window
	}
	return cfg, nil
}
