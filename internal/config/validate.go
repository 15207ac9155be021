package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}

	if c.Redis.Enabled() && !strings.HasPrefix(c.Redis.URL, "redis://") && !strings.HasPrefix(c.Redis.URL, "rediss://") {
		return fmt.Errorf("redis.url must use the redis:// or rediss:// scheme")
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	return nil
}

func (s *StudyConfig) validate() error {
	if s.StatsCacheTTL <= 0 {
		return fmt.Errorf("stats_cache_ttl must be > 0 (got %v)", s.StatsCacheTTL)
	}
	if s.CleanupBatchSize <= 0 {
		return fmt.Errorf("cleanup_batch_size must be > 0 (got %d)", s.CleanupBatchSize)
	}
	return nil
}
