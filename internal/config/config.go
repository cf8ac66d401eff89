// Package config provides environment-driven configuration for graphpane.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values.
type Config struct {
	Port                 string
	ListenHost           string
	CORSOrigins          []string
	LogLevel             string
	GraphDirected        bool
	GraphWeighted        bool
	KVBuckets            int
	PathsSafetyThreshold int
}

// Bucket count bounds for the key-value index.
const (
	minKVBuckets = 16
	maxKVBuckets = 1 << 20
)

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", "3030"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		GraphDirected: envOrDefault("GRAPH_DIRECTED", "true") == "true",
		GraphWeighted: envOrDefault("GRAPH_WEIGHTED", "true") == "true",
	}

	buckets, err := strconv.Atoi(envOrDefault("KV_BUCKETS", "1024"))
	if err != nil || buckets < minKVBuckets || buckets > maxKVBuckets {
		return nil, fmt.Errorf("KV_BUCKETS must be an integer between %d and %d", minKVBuckets, maxKVBuckets)
	}
	cfg.KVBuckets = buckets

	threshold, err := strconv.Atoi(envOrDefault("PATHS_SAFETY_THRESHOLD", "100"))
	if err != nil || threshold < 1 {
		return nil, fmt.Errorf("PATHS_SAFETY_THRESHOLD must be a positive integer")
	}
	cfg.PathsSafetyThreshold = threshold

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
