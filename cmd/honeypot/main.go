package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/anthropic"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/api"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/config"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/engine"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/events"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/reply"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/session"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("honeypot starting", "port", cfg.Port)

	generatorTimeout := time.Duration(cfg.GeneratorTimeout) * time.Second

	// External reply generator (optional — deterministic replies without it)
	var gen reply.Generator
	if cfg.AnthropicAPIKey != "" {
		gen = anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, generatorTimeout)
		slog.Info("anthropic generator ready", "model", cfg.AnthropicModel)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set — running with deterministic replies only")
	}

	// Event publisher (optional — honeypot works without NATS)
	var publisher engine.EventPublisher
	if cfg.NatsURL != "" {
		pub, err := events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		publisher = pub
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — running without event publishing")
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	synth := reply.New(gen, rng, generatorTimeout, slog.Default())

	sessions := session.New()
	eng := engine.New(sessions, synth, publisher, slog.Default())

	srv := api.NewServer(cfg.Port, cfg.APIToken, eng)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("honeypot ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down", "sessions", sessions.Len())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("honeypot stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
