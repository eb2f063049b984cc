package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled: true,
		Solve:   Tier{Name: "solve", Limit: 2, Window: time.Hour, Burst: 2},
		Read:    Tier{Name: "read", Limit: 100, Window: time.Minute, Burst: 100},
	}
}

func TestAllow_SolveBudgetExhausts(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/solve", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/solve", "POST")
	assert.True(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/solve", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_SolveEndpointsShareOneBudget(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/solve", "POST")
	l.Allow("1.2.3.4", "/solve/stream", "POST")

	allowed, _ := l.Allow("1.2.3.4", "/solve", "POST")
	assert.False(t, allowed, "stream and plain solve draw from the same bucket")
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/solve", "POST")
	l.Allow("1.2.3.4", "/solve", "POST")

	allowed, _ := l.Allow("5.6.7.8", "/solve", "POST")
	assert.True(t, allowed, "one client exhausting its budget must not affect another")
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/solve", "POST")
		assert.True(t, allowed)
	}
}

func TestAllow_ReadsUseLenientTier(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/solve", "POST")
	l.Allow("1.2.3.4", "/solve", "POST")

	// solve budget is gone, reads still flow
	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/roles", "GET")
		assert.True(t, allowed)
	}
}

func TestTierFor(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, "solve", cfg.tierFor("/solve", "POST").Name)
	assert.Equal(t, "solve", cfg.tierFor("/solve/stream", "POST").Name)
	assert.Equal(t, "read", cfg.tierFor("/roles", "GET").Name)
	assert.Equal(t, 0, cfg.tierFor("/health", "GET").Limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.Solve.Limit)
	assert.Equal(t, time.Hour, cfg.Solve.Window)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_SOLVE_LIMIT", "3")
	t.Setenv("RATE_LIMIT_READ_WINDOW", "30s")

	cfg := LoadConfig()
	assert.Equal(t, 3, cfg.Solve.Limit)
	assert.Equal(t, 30*time.Second, cfg.Read.Window)
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
