package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	FormEvm = "evm"
	FormXko = "xko"
)

type Config struct {
	LogLevel string      `toml:"log_level"`
	Form     string      `toml:"form"`
	Batch    BatchConfig `toml:"batch"`
}

type BatchConfig struct {
	Workers         int  `toml:"workers"`
	ContinueOnError bool `toml:"continue_on_error"`
}

var (
	mu      sync.RWMutex
	current = Default()
)

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Form:     FormEvm,
		Batch: BatchConfig{
			Workers:         4,
			ContinueOnError: true,
		},
	}
}

// Load decodes the TOML file at path over the defaults and makes it the
// config returned by Get. A missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, config); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	config.Form = strings.ToLower(strings.TrimSpace(config.Form))
	if err := config.Validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	current = config
	mu.Unlock()
	return config, nil
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	if c.Form != FormEvm && c.Form != FormXko {
		return fmt.Errorf("config: unknown form %q, want %s or %s", c.Form, FormEvm, FormXko)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("config: batch.workers must be positive, got %d", c.Batch.Workers)
	}
	return nil
}

func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
