package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Retry        RetryConfig        `mapstructure:"retry"`
	Slack        SlackConfig        `mapstructure:"slack"`
	Log          LogConfig          `mapstructure:"log"`
	HTTP         HTTPConfig         `mapstructure:"http"`
	Materializer MaterializerConfig `mapstructure:"materializer"`
}

type AppConfig struct {
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	BusyTimeoutMS int    `mapstructure:"busy_timeout_ms"`
}

// RetryConfig bounds the retries of statements that hit a busy/locked store
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BaseDelay   time.Duration `mapstructure:"base_delay"`
}

type SlackConfig struct {
	SigningSecret string `mapstructure:"signing_secret"`
	AdminUserID   int64  `mapstructure:"admin_user_id"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HTTPConfig holds the per-IP request budget (per minute) and whether the JSON API is mounted
type HTTPConfig struct {
	MaxRequests int  `mapstructure:"max_requests"`
	APIEnabled  bool `mapstructure:"api_enabled"`
}

// MaterializerConfig drives the job that persists upcoming weeks ahead of time
type MaterializerConfig struct {
	CronSpec   string `mapstructure:"cron_spec"`
	WeeksAhead int    `mapstructure:"weeks_ahead"`
}

// Load reads the configuration from the environment. Every key has a default,
// and `database.path` is read from DATABASE_PATH, `slack.signing_secret` from
// SLACK_SIGNING_SECRET and so on.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")

	v.SetDefault("database.path", "./timeslots.db")
	v.SetDefault("database.busy_timeout_ms", 250)

	v.SetDefault("retry.max_attempts", 5)
	v.SetDefault("retry.base_delay", "20ms")

	v.SetDefault("slack.signing_secret", "")
	v.SetDefault("slack.admin_user_id", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("http.max_requests", 20)
	v.SetDefault("http.api_enabled", false)

	v.SetDefault("materializer.cron_spec", "@daily")
	v.SetDefault("materializer.weeks_ahead", 4)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("invalid config: database.path must not be empty")
	}
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("invalid config: retry.max_attempts must be positive")
	}
	if c.Retry.BaseDelay < 0 {
		return fmt.Errorf("invalid config: retry.base_delay must not be negative")
	}
	if c.HTTP.MaxRequests <= 0 {
		return fmt.Errorf("invalid config: http.max_requests must be positive")
	}
	if c.Materializer.WeeksAhead < 0 {
		return fmt.Errorf("invalid config: materializer.weeks_ahead must not be negative")
	}
	return nil
}
