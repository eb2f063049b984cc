package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier groups endpoints sharing one budget.
type Tier struct {
	Name   string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration

	// Solve covers the endpoints that trigger model calls; Read covers
	// everything else except /health, which is unlimited.
	Solve Tier
	Read  Tier
}

// DefaultConfig returns the built-in budgets: solve runs are scarce, reads
// are generous.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		Solve:           Tier{Name: "solve", Limit: 10, Window: time.Hour, Burst: 2},
		Read:            Tier{Name: "read", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

// LoadConfig builds a Config from environment variables, falling back to
// the defaults for anything unset.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}
	cfg.Solve.Limit = envInt("RATE_LIMIT_SOLVE_LIMIT", cfg.Solve.Limit)
	cfg.Solve.Window = envDuration("RATE_LIMIT_SOLVE_WINDOW", cfg.Solve.Window)
	cfg.Read.Limit = envInt("RATE_LIMIT_READ_LIMIT", cfg.Read.Limit)
	cfg.Read.Window = envDuration("RATE_LIMIT_READ_WINDOW", cfg.Read.Window)
	cfg.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// tierFor maps a request to its budget tier.
func (c *Config) tierFor(path, method string) Tier {
	if path == "/health" && method == "GET" {
		return Tier{}
	}
	if method == "POST" && strings.HasPrefix(path, "/solve") {
		return c.Solve
	}
	return c.Read
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
