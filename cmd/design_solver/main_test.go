package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["solve"])
	assert.True(t, names["serve"])
	assert.True(t, names["roles"])
}

func TestSolveFlagDefaults(t *testing.T) {
	mode, err := solveCmd.Flags().GetString("mode")
	require.NoError(t, err)
	assert.Equal(t, "idea", mode)

	depth, err := solveCmd.Flags().GetString("depth")
	require.NoError(t, err)
	assert.Equal(t, "standard", depth)
}

func TestServeFlagDefaults(t *testing.T) {
	port, err := serveCmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestAPIKeyFromEnv(t *testing.T) {
	key, err := apiKeyFromEnv("flag-key")
	require.NoError(t, err)
	assert.Equal(t, "flag-key", key)

	t.Setenv("GEMINI_API_KEY", "env-key")
	key, err = apiKeyFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)

	t.Setenv("GEMINI_API_KEY", "")
	_, err = apiKeyFromEnv("")
	assert.Error(t, err)
}
