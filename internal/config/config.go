package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath             string
	ServerPort         string
	LogLevel           string
	FeedWebhookURL     string
	FeedTimeout        time.Duration
	ConfederationsFile string
	AllowedOrigins     []string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	feedTimeout, err := time.ParseDuration(getEnv("FEED_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FEED_TIMEOUT: %w", err)
	}

	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "career.db"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FeedWebhookURL:     getEnv("FEED_WEBHOOK_URL", ""),
		FeedTimeout:        feedTimeout,
		ConfederationsFile: getEnv("CONFEDERATIONS_FILE", ""),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("feed_enabled", cfg.FeedWebhookURL != "").
		Dur("feed_timeout", cfg.FeedTimeout).
		Str("confederations_file", cfg.ConfederationsFile).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var Module = fx.Provide(Load)
