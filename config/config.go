package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret string `env:"JWT_SECRET,required" validate:"required,min=32"`

	GoogleCredentialsPath string `env:"GOOGLE_CREDENTIALS_PATH" validate:"required_if=Env production,required_if=Env staging"`
	GoogleTokenPath       string `env:"GOOGLE_TOKEN_PATH"       validate:"required_if=Env production,required_if=Env staging"`
	GoogleCalendarID      string `env:"GOOGLE_CALENDAR_ID"      envDefault:"primary"`

	DevOpsOrgURL string `env:"DEVOPS_ORG_URL"`
	DevOpsPAT    string `env:"DEVOPS_PAT"`

	DocumentContainer string `env:"DOCUMENT_CONTAINER" envDefault:"documents"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`

	ReminderCron    string `env:"REMINDER_CRON" envDefault:"* * * * *"`
	ReminderLeadMin int    `env:"REMINDER_LEAD_MIN" envDefault:"10" validate:"min=1,max=120"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
