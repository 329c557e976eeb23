package config

import (
	"os"
	"testing"
	"time"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	clearEnv := func(t *testing.T) {
		t.Helper()
		for _, key := range []string{
			"REMINDER_HTTP_PORT",
			"REMINDER_SQLITE_DSN",
			"REMINDER_POLL_INTERVAL",
			"REMINDER_NOTIFY_TIMEOUT",
			"REMINDER_NOTIFY_TITLE",
			"DEEPSEEK_API_KEY",
			"REMINDER_DEEPSEEK_MODEL",
			"REMINDER_LOG_LEVEL",
		} {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}
	}

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8686 {
			t.Fatalf("expected default HTTP port 8686, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:reminders.db" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.PollInterval != 30*time.Second {
			t.Fatalf("expected default poll interval 30s, got %s", cfg.PollInterval)
		}
		if cfg.NotifyTimeout != 10*time.Second {
			t.Fatalf("expected default notify timeout 10s, got %s", cfg.NotifyTimeout)
		}
		if cfg.DeepSeekAPIKey != "" {
			t.Fatalf("expected empty API key, got %q", cfg.DeepSeekAPIKey)
		}
		if cfg.DeepSeekModel != "deepseek-chat" {
			t.Fatalf("unexpected default model: %q", cfg.DeepSeekModel)
		}
		if cfg.LogLevel != "info" {
			t.Fatalf("unexpected default log level: %q", cfg.LogLevel)
		}
	})

	t.Run("parses duration and numeric fields", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REMINDER_HTTP_PORT", "9090")
		t.Setenv("REMINDER_SQLITE_DSN", "file:/tmp/reminders.db")
		t.Setenv("REMINDER_POLL_INTERVAL", "10s")
		t.Setenv("REMINDER_NOTIFY_TIMEOUT", "3s")
		t.Setenv("REMINDER_NOTIFY_TITLE", "工作提醒")
		t.Setenv("DEEPSEEK_API_KEY", "sk-test")
		t.Setenv("REMINDER_DEEPSEEK_MODEL", "deepseek-reasoner")
		t.Setenv("REMINDER_LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.PollInterval != 10*time.Second {
			t.Fatalf("expected poll interval 10s, got %s", cfg.PollInterval)
		}
		if cfg.NotifyTimeout != 3*time.Second {
			t.Fatalf("expected notify timeout 3s, got %s", cfg.NotifyTimeout)
		}
		if cfg.NotifyTitle != "工作提醒" {
			t.Fatalf("unexpected notify title: %q", cfg.NotifyTitle)
		}
		if cfg.DeepSeekAPIKey != "sk-test" {
			t.Fatalf("unexpected API key: %q", cfg.DeepSeekAPIKey)
		}
		if cfg.DeepSeekModel != "deepseek-reasoner" {
			t.Fatalf("unexpected model: %q", cfg.DeepSeekModel)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("unexpected log level: %q", cfg.LogLevel)
		}
	})

	t.Run("reports invalid values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REMINDER_HTTP_PORT", "not-a-port")
		t.Setenv("REMINDER_POLL_INTERVAL", "-5s")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
		expected := "環境變數的值無效: REMINDER_HTTP_PORT, REMINDER_POLL_INTERVAL"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REMINDER_LOG_LEVEL", "verbose")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})
}
