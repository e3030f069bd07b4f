// internal/config/config.go
package config

import (
	"fmt"
	"os"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort  string
	DatabaseURL string
}

// LoadConfig loads configuration from environment variables. Both the
// listening port and the database connection string are required; a missing
// value aborts startup.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		return nil, fmt.Errorf("SERVER_PORT is not defined")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not defined")
	}

	return &AppConfig{
		ServerPort:  serverPort,
		DatabaseURL: databaseURL,
	}, nil
}
