package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/guildpanel/backend/pkg/logger"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Session   SessionConfigs
	Auth      AuthConfigs
	LogLevel  int
}

type ServerConfigs struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

// SessionConfigs carries the credential for the platform session, not for
// panel users.
type SessionConfigs struct {
	Token string
}

// AuthConfigs holds the shared secret every panel request must present.
type AuthConfigs struct {
	Secret string
}

func (s ServerConfigs) Address() string {
	return s.Host + ":" + s.Port
}

// Load reads the configuration from environment variables. Both secrets are
// mandatory; the process must not come up without them.
func Load() (Configs, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENV", "prod")

	botToken := v.GetString("BOT_TOKEN")
	if botToken == "" {
		return Configs{}, errors.New("BOT_TOKEN is not set")
	}

	webToken := v.GetString("WEB_TOKEN")
	if webToken == "" {
		return Configs{}, errors.New("WEB_TOKEN is not set")
	}

	var origins []string
	if raw := v.GetString("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return Configs{
		Env: v.GetString("ENV"),
		ApiServer: ServerConfigs{
			Host:           v.GetString("HOST"),
			Port:           v.GetString("PORT"),
			AllowedOrigins: origins,
		},
		Session:  SessionConfigs{Token: botToken},
		Auth:     AuthConfigs{Secret: webToken},
		LogLevel: parseLogLevel(v.GetString("LOG_LEVEL")),
	}, nil
}

func parseLogLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG
	case "warn", "warning":
		return logger.WARNING
	case "error":
		return logger.ERROR
	case "silence":
		return logger.SILENCE
	default:
		return logger.INFO
	}
}
