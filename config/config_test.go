package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, 8080, cfg.APIPort)
	require.Equal(t, "./data", cfg.DataDir)
	require.Equal(t, time.Hour, cfg.ContentInterval)
	require.Equal(t, 6*time.Hour, cfg.LifecycleInterval)
	require.Equal(t, 2*time.Hour, cfg.SocialInterval)
	require.Equal(t, 30*time.Minute, cfg.ChatInterval)
	require.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	require.True(t, cfg.AutoStart)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9001")
	t.Setenv("CHAT_INTERVAL", "90s")
	t.Setenv("AUTO_START", "false")
	t.Setenv("DATA_DIR", "/tmp/circle")

	cfg := Load()
	require.Equal(t, 9001, cfg.APIPort)
	require.Equal(t, 90*time.Second, cfg.ChatInterval)
	require.False(t, cfg.AutoStart)
	require.Equal(t, "/tmp/circle", cfg.DataDir)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("API_PORT", "not-a-number")
	t.Setenv("SOCIAL_INTERVAL", "-5m")

	cfg := Load()
	require.Equal(t, 8080, cfg.APIPort)
	require.Equal(t, 2*time.Hour, cfg.SocialInterval)
}
