// Package config loads process settings for both binaries from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/piwi3910/FurniProfit/internal/project"
)

const (
	defaultPort     = "8080"
	defaultLogLevel = "info"
)

// Config holds the process configuration sourced from environment variables.
type Config struct {
	Port          string
	LogLevel      zerolog.Level
	AppConfigPath string // preferences file shared with the desktop app
}

// Load reads environment variables and returns a populated Config.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          os.Getenv("PORT"),
		AppConfigPath: os.Getenv("FURNIPROFIT_CONFIG"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AppConfigPath == "" {
		cfg.AppConfigPath = project.DefaultConfigPath()
	}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = defaultLogLevel
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	cfg.LogLevel = parsed

	return cfg
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
