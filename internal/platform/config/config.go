package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the application, loaded from the
// environment (optionally seeded from a .env file in development).
type Config struct {
	PgsqlURL          string        `mapstructure:"PGSQL_URL"`
	Port              string        `mapstructure:"PORT"`
	IsProduction      bool          `mapstructure:"IS_PRODUCTION"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTExpiryDuration time.Duration `mapstructure:"JWT_EXPIRY_DURATION"`
	JWTIssuer         string        `mapstructure:"JWT_ISSUER"`
	RateLimit         string        `mapstructure:"RATE_LIMIT"`
}

// LoadConfig reads configuration from environment variables. A .env file, when
// present, is loaded first so local development does not need exported vars.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "budget-tracker")
	v.SetDefault("RATE_LIMIT", "5-M")

	// AutomaticEnv alone does not populate Unmarshal; bind each key explicitly.
	for _, key := range []string{"PGSQL_URL", "PORT", "IS_PRODUCTION", "JWT_SECRET", "JWT_EXPIRY_DURATION", "JWT_ISSUER", "RATE_LIMIT"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.PgsqlURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &cfg, nil
}
