package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"text-summarizer/internal/config"
	"text-summarizer/internal/extractor"
	"text-summarizer/internal/logging"
	"text-summarizer/internal/server"
	"text-summarizer/internal/summarizer"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	idleTimeout       = 120 * time.Second
	writeTimeoutSlack = 15 * time.Second
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dotEnvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}

	log, err = logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to initialize logger",
			"error", err,
			"logFormat", cfg.LogFormat,
			"logLevel", cfg.LogLevel)

		return
	}
	slog.SetDefault(log)

	if dotEnvErr != nil {
		log.DebugContext(ctx, ".env file is not loaded",
			"error", dotEnvErr)
	} else {
		log.InfoContext(ctx, ".env file is loaded")
	}

	s, err := summarizer.NewOpenAISummarizer(summarizer.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIAPIBase,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.OpenAITimeout,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to create OpenAI summarizer",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return
	}
	log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"model", cfg.OpenAIModel,
		"customBaseURL", cfg.OpenAIAPIBase != "",
		"timeout", cfg.OpenAITimeout.String())

	fetcher := extractor.New(cfg.FetchTimeout, cfg.FetchMaxBytes, log)

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(server.NewHandler(fetcher, s, log), log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      cfg.FetchTimeout + cfg.OpenAITimeout + writeTimeoutSlack,
		IdleTimeout:       idleTimeout,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- srv.ListenAndServe()
	}()
	log.InfoContext(ctx, "HTTP server is started",
		"addr", cfg.HTTPAddr)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	case err = <-serveErrCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed",
				"error", err,
				"addr", cfg.HTTPAddr)
		}
	}
	cancel()

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(shutdownCtx, "Failed to shut down HTTP server",
			"error", err,
			"shutdownTimeout", cfg.ShutdownTimeout.String())

		return
	}
	log.InfoContext(shutdownCtx, "HTTP server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}
