package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	httpadapter "github.com/randomtoy/namefortune-go/internal/adapters/http"
	"github.com/randomtoy/namefortune-go/internal/adapters/llm/openai"
	"github.com/randomtoy/namefortune-go/internal/adapters/phrasebooks"
	"github.com/randomtoy/namefortune-go/internal/app"
	"github.com/randomtoy/namefortune-go/internal/config"
)

// systemClock reports wall-clock time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	phrasebook, err := phrasebooks.NewEmbeddedStore().GetPhrasebook(context.Background(), cfg.Language)
	if err != nil {
		logger.Error("failed to load phrasebook", "lang", cfg.Language, "error", err)
		os.Exit(1)
	}

	llmClient := openai.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.LLMModel,
		logger,
	)

	svc := app.NewFortuneService(llmClient, phrasebook, cfg.MockMode(), systemClock{})

	handler := httpadapter.NewHandler(svc, cfg.OpenAIConfigured())
	e := httpadapter.NewRouter(handler, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server",
			"addr", cfg.HTTPAddr,
			"lang", phrasebook.Lang,
			"mocked", svc.Mocked(),
			"openai_configured", cfg.OpenAIConfigured(),
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
