package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (c *Config) validate() error {
	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return c.validateLogLevel()
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Validate LISTEN_HOST is a known-safe address. Allow loopback addresses for
	// local deployments and 0.0.0.0/:: for containerized deployments where the
	// network boundary is enforced externally (e.g. Docker, Kubernetes).
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateLogLevel() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return nil
	default:
		return fmt.Errorf("LOG_LEVEL must be a valid logrus level, got %q", c.LogLevel)
	}
}
