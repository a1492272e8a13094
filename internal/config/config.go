package config

import (
	"log/slog"
	"os"
	"strings"
)

// GameConfig holds the default game options, loaded from environment
// variables. Command line flags take precedence over these.
type GameConfig struct {
	Strategy   string
	HumanColor string
}

// LoadGameConfig loads configuration from environment variables.
func LoadGameConfig() *GameConfig {
	return &GameConfig{
		Strategy:   getEnv("OTHELLO_STRATEGY", ""),
		HumanColor: getEnv("OTHELLO_HUMAN_COLOR", "black"),
	}
}

// getEnv returns the environment variable or the fallback if it is not set.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SetLogLevel sets the log level for the application. The default is
// warn so that log lines don't interleave with the board during play.
func SetLogLevel() {
	level := slog.LevelWarn
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToUpper(envLevel) {
		case "DEBUG":
			level = slog.LevelDebug
		case "INFO":
			level = slog.LevelInfo
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		default:
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
