package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Database   DatabaseConfig
	ClickHouse ClickHouseConfig
	Telegram   TelegramConfig
	Analysis   AnalysisConfig
	Logging    LoggingConfig
}

// DatabaseConfig represents Postgres connection parameters
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"pollpulse"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// GetDSN builds the Postgres connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// ClickHouseConfig represents the optional analytics sink
type ClickHouseConfig struct {
	Enabled  bool   `envconfig:"CLICKHOUSE_ENABLED" default:"false"`
	Host     string `envconfig:"CLICKHOUSE_HOST" default:"localhost"`
	Port     int    `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	Name     string `envconfig:"CLICKHOUSE_DB" default:"pollpulse"`
	User     string `envconfig:"CLICKHOUSE_USER" default:"default"`
	Password string `envconfig:"CLICKHOUSE_PASSWORD" required:"false"`
}

// GetDSN builds the ClickHouse connection string
func (c *ClickHouseConfig) GetDSN() string {
	return fmt.Sprintf("clickhouse://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// TelegramConfig represents the optional run-summary notifier
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// AnalysisConfig represents batch analysis parameters
type AnalysisConfig struct {
	Granularity string        `envconfig:"ANALYSIS_GRANULARITY" default:"day"`
	Topic       string        `envconfig:"ANALYSIS_TOPIC" default:"all"`
	TopicsFile  string        `envconfig:"ANALYSIS_TOPICS_FILE" required:"false"`
	PollName    string        `envconfig:"ANALYSIS_POLL_NAME" required:"false"`
	MaxLag      int           `envconfig:"ANALYSIS_MAX_LAG" default:"7"`
	Spearman    bool          `envconfig:"ANALYSIS_SPEARMAN" default:"true"`
	Workers     int           `envconfig:"ANALYSIS_WORKERS" default:"0"`
	Interval    time.Duration `envconfig:"ANALYSIS_INTERVAL" default:"6h"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	switch c.Analysis.Granularity {
	case "day", "week":
	default:
		return fmt.Errorf("unsupported granularity: %s", c.Analysis.Granularity)
	}
	if c.Analysis.MaxLag < 0 {
		return fmt.Errorf("max lag must not be negative")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram chat id required when bot token is set")
	}
	return nil
}
