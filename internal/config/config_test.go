package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripmate/internal/places"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "TOKEN_TTL", "PLACES_API_KEY", "PLACES_BASE_URL", "NAV_DELAY"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "./data/tripmate.db", cfg.DBPath)
	require.Equal(t, 72*time.Hour, cfg.TokenTTL)
	require.Equal(t, 300*time.Millisecond, cfg.NavDelay)
	require.Equal(t, places.DefaultBaseURL, cfg.PlacesBaseURL)
	require.Empty(t, cfg.PlacesAPIKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("NAV_DELAY", "0s")
	t.Setenv("PLACES_API_KEY", "key")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Zero(t, cfg.NavDelay)
	require.Equal(t, "key", cfg.PlacesAPIKey)
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := FromEnv()
	require.ErrorContains(t, err, "invalid PORT")

	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "forever")
	_, err = FromEnv()
	require.ErrorContains(t, err, "invalid TOKEN_TTL")
}
