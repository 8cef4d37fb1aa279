package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

type Config struct {
	AppPort         int    `env:"APP_PORT,default=8080"`
	AWSRegion       string `env:"AWS_REGION,default=us-east-1"`
	QueueURL        string `env:"SQS_QUEUE_URL"`
	NotifyEnabled   bool   `env:"SQS_NOTIFICATIONS_ENABLED,default=false"`
	LogLevel        string `env:"LOG_LEVEL,default=info"`
	RateLimitPerSec int    `env:"RATE_LIMIT_PER_SEC,default=100"`
}

func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Misconfigured reports the one config state worth flagging at startup:
// notifications switched on with nowhere to send them. The dispatcher still
// treats this as a silent no-op at call time.
func (c *Config) Misconfigured() bool {
	return c.NotifyEnabled && c.QueueURL == ""
}
