package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port int `toml:"port"`
}

type CORSConfig struct {
	AllowOrigins string `toml:"allow_origins"`
}

type RateLimitConfig struct {
	Requests      int `toml:"requests"`
	WindowSeconds int `toml:"window_seconds"`
}

type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Log       LogConfig       `toml:"log"`
}

// Default returns the configuration used when no config file is present.
// Defaults suit a local demo deployment: port 3000, any origin.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: 3000},
		CORS:      CORSConfig{AllowOrigins: "*"},
		RateLimit: RateLimitConfig{Requests: 100, WindowSeconds: 60},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML config file, filling unset fields with defaults.
// A missing file is not an error; the defaults are returned as-is.
func LoadConfig(filepath string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(filepath, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filepath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values for obvious mistakes.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate limit requests must be positive: %d", c.RateLimit.Requests)
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate limit window must be positive: %d", c.RateLimit.WindowSeconds)
	}
	return nil
}

// RateLimitWindow returns the rate limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
