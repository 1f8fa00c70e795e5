package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/agent"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/config"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/llm"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/server"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/tools"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	anthropicKey := mustEnv("ANTHROPIC_API_KEY")
	weatherKey := mustEnv("OPENWEATHERMAP_API_KEY")
	placesKey := mustEnv("GPLACES_API_KEY")
	exchangeKey := mustEnv("EXCHANGE_RATE_API_KEY")

	settings, err := config.Load(os.Getenv("GLOBALGUIDE_CONFIG"))
	if err != nil {
		log.Error("failed to load settings", "err", err)
		os.Exit(1)
	}
	addr := envOr("SERVER_ADDR", settings.Addr)

	llmOpts := []llm.Option{
		llm.WithMaxTokens(settings.MaxTokens),
		llm.WithTemperature(settings.Temperature),
	}
	if settings.Model != "" {
		llmOpts = append(llmOpts, llm.WithModel(anthropic.Model(settings.Model)))
	}
	llmClient := llm.NewClient(anthropicKey, llmOpts...)

	registry := tools.NewRegistry(
		weather.NewClient(weatherKey),
		places.NewClient(placesKey),
		exchange.NewClient(exchangeKey),
	)

	planner := agent.NewPlanner(llmClient, registry, log, agent.WithMaxSteps(settings.MaxSteps))
	api := server.New(planner, log)

	srv := &http.Server{
		Addr:        addr,
		Handler:     api.Handler(),
		ReadTimeout: 10 * time.Second,
		// Planning runs several model round-trips; leave room before cutting
		// the response off.
		WriteTimeout: 5 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("travel planner listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("missing required env var", "key", key)
		os.Exit(1)
	}
	return v
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
