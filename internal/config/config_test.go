package config

import (
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "SERVER_PORT", "LOG_LEVEL", "FEED_WEBHOOK_URL", "FEED_TIMEOUT", "CONFEDERATIONS_FILE", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "career.db" || cfg.ServerPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.FeedTimeout != 5*time.Second || cfg.FeedWebhookURL != "" {
		t.Errorf("feed = %q %s", cfg.FeedWebhookURL, cfg.FeedTimeout)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("FEED_TIMEOUT", "250ms")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.FeedTimeout != 250*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"FEED_TIMEOUT": "soon",
		"LOG_LEVEL":    "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(zerolog.Nop()); err == nil {
				t.Errorf("%s=%s should fail", key, value)
			}
		})
	}
}
