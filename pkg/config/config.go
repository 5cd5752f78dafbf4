package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds client configuration.
type Config struct {
	APIBaseURL    string
	OAuthClientID string
	StateFile     string
	HTTPTimeout   time.Duration
	RequestsPerSec int
	PosthogAPIKey string
	IsProduction  bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("API_BASE_URL", "https://app.ledgerline.io")
	viper.SetDefault("OAUTH_CLIENT_ID", "")
	viper.SetDefault("STATE_FILE", "")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("REQUESTS_PER_SEC", 20)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("API_BASE_URL")

	cfg.OAuthClientID = viper.GetString("OAUTH_CLIENT_ID")
	if cfg.OAuthClientID == "" {
		log.Println("Warning: OAUTH_CLIENT_ID environment variable not set.")
	}

	cfg.StateFile = viper.GetString("STATE_FILE")
	if cfg.StateFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.StateFile = filepath.Join(home, ".booksclient", "state.json")
	}

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.HTTPTimeout = timeout

	cfg.RequestsPerSec = viper.GetInt("REQUESTS_PER_SEC")
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 20
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
