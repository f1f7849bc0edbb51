package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                    int    `env:"PORT" envDefault:"8080"`
	TelegramToken           string `env:"TELEGRAM_TOKEN,required"`
	TelegramWebhookSecret   string `env:"TELEGRAM_WEBHOOK_SECRET"`
	TelegramWebhookURL      string `env:"TELEGRAM_WEBHOOK_URL"`
	TelegramAPIBaseURL      string `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
	GeminiAPIKey            string `env:"GEMINI_API_KEY,required"`
	GeminiModel             string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	SerpAPIKey              string `env:"SERPAPI_KEY,required"`
	SerpAPIBaseURL          string `env:"SERPAPI_BASE_URL" envDefault:"https://serpapi.com"`
	SearchCountry           string `env:"SEARCH_COUNTRY" envDefault:"il"`
	SearchCurrency          string `env:"SEARCH_CURRENCY" envDefault:"USD"`
	DatabaseURL             string `env:"DATABASE_URL,required"`
	MongoURI                string `env:"MONGO_URI,required"`
	MongoDBName             string `env:"MONGO_DB_NAME" envDefault:"travelbot"`
	RedisURL                string `env:"REDIS_URL,required"`
	SessionTTLSeconds       int    `env:"SESSION_TTL_SECONDS" envDefault:"1800"`
	AuditRetentionDays      int    `env:"AUDIT_RETENTION_DAYS" envDefault:"30"`
	RecommendTimeoutSeconds int    `env:"RECOMMEND_TIMEOUT_SECONDS" envDefault:"60"`
	RateLimitPerMin         int    `env:"RATE_LIMIT_PER_MIN" envDefault:"20"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

func (c *Config) AuditRetention() time.Duration {
	return time.Duration(c.AuditRetentionDays) * 24 * time.Hour
}

func (c *Config) RecommendTimeout() time.Duration {
	return time.Duration(c.RecommendTimeoutSeconds) * time.Second
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Validate(isProduction bool) error {
	if c.SessionTTLSeconds <= 0 {
		return fmt.Errorf("SESSION_TTL_SECONDS must be positive")
	}
	if c.RecommendTimeoutSeconds <= 0 {
		return fmt.Errorf("RECOMMEND_TIMEOUT_SECONDS must be positive")
	}

	if isProduction {
		if c.TelegramWebhookSecret == "" {
			log.Warn().Msg("TELEGRAM_WEBHOOK_SECRET is empty in production: webhook secret verification disabled")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			log.Warn().Msg("REDIS_URL uses redis:// (not TLS) in production: consider using rediss://")
		}
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
