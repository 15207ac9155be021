package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration with precedence ENV > YAML > env-default tags.
//
// The YAML path comes from CONFIG_PATH. Without CONFIG_PATH a missing
// ./config.yaml is fine and only ENV and defaults apply; an explicit path
// that does not exist is an error.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	explicit = explicit && path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize trims and lower-cases values that are compared case-insensitively.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Redis.URL = strings.TrimSpace(c.Redis.URL)
	c.Auth.JWTIssuer = strings.TrimSpace(c.Auth.JWTIssuer)
}
