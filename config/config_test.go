package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/pkg/logger"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "bot-token")
	t.Setenv("WEB_TOKEN", "web-token")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "dev")
	t.Setenv("ALLOWED_ORIGINS", "https://panel.example,https://staging.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "8080", cfg.ApiServer.Port)
	require.Equal(t, "bot-token", cfg.Session.Token)
	require.Equal(t, "web-token", cfg.Auth.Secret)
	require.Equal(t, logger.DEBUG, cfg.LogLevel)
	require.Equal(t,
		[]string{"https://panel.example", "https://staging.example"},
		cfg.ApiServer.AllowedOrigins)
}

func TestLoad_defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "bot-token")
	t.Setenv("WEB_TOKEN", "web-token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "3000", cfg.ApiServer.Port)
	require.Equal(t, logger.INFO, cfg.LogLevel)
	require.Empty(t, cfg.ApiServer.AllowedOrigins)
}

func TestLoad_missingSecrets(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("WEB_TOKEN", "web-token")
	_, err := Load()
	require.EqualError(t, err, "BOT_TOKEN is not set")

	t.Setenv("BOT_TOKEN", "bot-token")
	t.Setenv("WEB_TOKEN", "")
	_, err = Load()
	require.EqualError(t, err, "WEB_TOKEN is not set")
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, logger.DEBUG, parseLogLevel("debug"))
	require.Equal(t, logger.WARNING, parseLogLevel("warn"))
	require.Equal(t, logger.ERROR, parseLogLevel("ERROR"))
	require.Equal(t, logger.SILENCE, parseLogLevel("silence"))
	require.Equal(t, logger.INFO, parseLogLevel("anything"))
}
