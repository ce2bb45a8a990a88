package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the runtime configuration, read from the environment and an
// optional .env file.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	DataFile    string `envconfig:"CRYPTOBOT_DATA_FILE"`
	JournalPath string `envconfig:"CRYPTOBOT_JOURNAL"`
	Color       bool   `envconfig:"CRYPTOBOT_COLOR" default:"true"`

	Agent AgentConfig
}

// AgentConfig holds the Teneo agent settings used by the agent command.
type AgentConfig struct {
	PrivateKey         string `envconfig:"PRIVATE_KEY"`
	NFTTokenID         string `envconfig:"NFT_TOKEN_ID"`
	OwnerAddress       string `envconfig:"OWNER_ADDRESS"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"0"`
	HealthPort         int    `envconfig:"HEALTH_PORT" default:"8080"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	return &cfg, nil
}
