// Package config loads service configuration from the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the reminder service.
type Config struct {
	HTTPPort      int
	SQLiteDSN     string
	PollInterval  time.Duration
	NotifyTimeout time.Duration
	NotifyTitle   string
	// DeepSeekAPIKey is optional. When empty the AI collaborator is disabled
	// and reminders keep their placeholder category.
	DeepSeekAPIKey string
	DeepSeekModel  string
	LogLevel       string
}

// Load parses configuration values from the current process environment.
//
// Every field has a sensible default; set values are validated and reported
// with localized error messages.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8686,
		SQLiteDSN:     "file:reminders.db",
		PollInterval:  30 * time.Second,
		NotifyTimeout: 10 * time.Second,
		NotifyTitle:   "提醒小幫手",
		DeepSeekModel: "deepseek-chat",
		LogLevel:      "info",
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("REMINDER_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "REMINDER_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("REMINDER_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if intervalValue := strings.TrimSpace(os.Getenv("REMINDER_POLL_INTERVAL")); intervalValue != "" {
		interval, err := time.ParseDuration(intervalValue)
		if err != nil || interval <= 0 {
			invalid = append(invalid, "REMINDER_POLL_INTERVAL")
		} else {
			cfg.PollInterval = interval
		}
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("REMINDER_NOTIFY_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "REMINDER_NOTIFY_TIMEOUT")
		} else {
			cfg.NotifyTimeout = timeout
		}
	}

	if title := strings.TrimSpace(os.Getenv("REMINDER_NOTIFY_TITLE")); title != "" {
		cfg.NotifyTitle = title
	}

	cfg.DeepSeekAPIKey = strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY"))

	if model := strings.TrimSpace(os.Getenv("REMINDER_DEEPSEEK_MODEL")); model != "" {
		cfg.DeepSeekModel = model
	}

	if level := strings.TrimSpace(os.Getenv("REMINDER_LOG_LEVEL")); level != "" {
		switch strings.ToLower(level) {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = strings.ToLower(level)
		default:
			invalid = append(invalid, "REMINDER_LOG_LEVEL")
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("環境變數的值無效: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
