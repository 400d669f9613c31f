package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// This file contains the service configuration. Everything is optional: the
// service has no backing stores or API keys, so every setting has a usable
// fallback and startup cannot fail on missing environment variables.

type apiConfig struct {
	port        string
	devMode     bool
	defaultZoom int
	logger      *slog.Logger
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// newAPIConfig assembles the configuration from the environment. Log output
// goes to w; dev mode switches the handler from JSON to human-readable text.
func newAPIConfig(w io.Writer) *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	return &apiConfig{
		port:        getEnv("PORT", "8080", logger),
		devMode:     devMode,
		defaultZoom: getEnvAsInt("DEFAULT_ZOOM", 12, logger),
		logger:      logger,
	}
}
