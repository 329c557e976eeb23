// Command reminderd runs the personal reminder service: an HTTP API for
// managing reminders, a polling dispatcher that fires desktop notifications
// when reminders come due, and an optional DeepSeek-backed assistant that
// categorises reminders and writes daily summaries.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/example/reminder-assistant/internal/application"
	"github.com/example/reminder-assistant/internal/assistant"
	"github.com/example/reminder-assistant/internal/config"
	"github.com/example/reminder-assistant/internal/dispatch"
	httptransport "github.com/example/reminder-assistant/internal/http"
	"github.com/example/reminder-assistant/internal/logging"
	"github.com/example/reminder-assistant/internal/notify"
	"github.com/example/reminder-assistant/internal/persistence/sqlite"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	var classifier application.Classifier
	var summarizer application.Summarizer
	if cfg.DeepSeekAPIKey != "" {
		client, err := assistant.New(cfg.DeepSeekAPIKey, cfg.DeepSeekModel, 0)
		if err != nil {
			logger.Error("failed to create assistant client", "error", err)
			os.Exit(1)
		}
		classifier, summarizer = client, client
		logger.Info("AI assistant enabled", "model", cfg.DeepSeekModel)
	} else {
		logger.Info("AI assistant disabled, reminders keep the placeholder category")
	}

	idGenerator := uuid.NewString
	now := time.Now

	service := application.NewReminderService(storage, classifier, summarizer, idGenerator, now, logger)

	notifier := notify.NewDesktopNotifier(cfg.NotifyTitle, cfg.NotifyTimeout)
	dispatcher := dispatch.NewDispatcher(storage, notifier, dispatch.NewFiredCache(0), logger)
	poller := dispatch.NewPoller(dispatcher, cfg.PollInterval, now, logger)
	poller.Start(ctx)
	defer poller.Stop()

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Reminders:  httptransport.NewReminderHandler(service, logger),
		Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("reminder API listening", "addr", server.Addr, "poll_interval", cfg.PollInterval.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
