package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         App       `mapstructure:"app"`
	DatabaseURL string    `mapstructure:"database_url"`
	Telegram    Telegram  `mapstructure:"telegram"`
	Gitlab      Gitlab    `mapstructure:"gitlab"`
	Jira        Jira      `mapstructure:"jira"`
	Approvals   Approvals `mapstructure:"approvals"`
	WorkHours   WorkHours `mapstructure:"work_hours"`
	Sweep       Sweep     `mapstructure:"sweep"`
	Retry       Retry     `mapstructure:"retry"`
}

type App struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

type Telegram struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url"`
}

type Gitlab struct {
	WebhookToken string `mapstructure:"webhook_token"`
}

type Jira struct {
	BaseURL string `mapstructure:"base_url"`
}

type Approvals struct {
	DefaultRequired int `mapstructure:"default_required"`
}

// WorkHours is the availability window applied to users without an
// explicit one.
type WorkHours struct {
	Start    string `mapstructure:"start"`
	End      string `mapstructure:"end"`
	Timezone string `mapstructure:"timezone"`
}

type Sweep struct {
	Interval time.Duration `mapstructure:"interval"`
	Limit    int           `mapstructure:"limit"`
}

type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Backoff     string        `mapstructure:"backoff"`
	Base        time.Duration `mapstructure:"base"`
	Factor      float64       `mapstructure:"factor"`
	Max         time.Duration `mapstructure:"max"`
	Jitter      float64       `mapstructure:"jitter"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.port", "3000")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("app.migrations_dir", "migrations")
	v.SetDefault("telegram.base_url", "https://api.telegram.org")
	v.SetDefault("approvals.default_required", 2)
	v.SetDefault("work_hours.start", "09:00")
	v.SetDefault("work_hours.end", "18:00")
	v.SetDefault("work_hours.timezone", "Europe/Moscow")
	v.SetDefault("sweep.interval", time.Minute)
	v.SetDefault("sweep.limit", 200)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.backoff", "exponential")
	v.SetDefault("retry.base", 50*time.Millisecond)
	v.SetDefault("retry.factor", 2.0)
	v.SetDefault("retry.max", time.Second)
	v.SetDefault("retry.jitter", 0.2)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is required")
	}
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram.token is required")
	}

	return cfg, nil
}
