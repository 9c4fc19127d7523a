package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if err := c.Notify.validate(); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/' (got %q)", c.Metrics.Path)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if strings.TrimSpace(m.ViolationReason) == "" {
		return fmt.Errorf("violation_reason must not be empty")
	}
	if m.ListLimit <= 0 {
		return fmt.Errorf("list_limit must be > 0 (got %d)", m.ListLimit)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if !n.Enabled {
		return nil
	}
	if len(n.URLs()) == 0 {
		return fmt.Errorf("at least one URL is required when notifications are enabled")
	}
	if n.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", n.Timeout)
	}
	return nil
}
