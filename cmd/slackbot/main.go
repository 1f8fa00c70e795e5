package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/agent"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/config"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/llm"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
	slackhandler "github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/slack"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/tools"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	botToken := mustEnv("SLACK_BOT_TOKEN")
	appToken := mustEnv("SLACK_APP_TOKEN")
	anthropicKey := mustEnv("ANTHROPIC_API_KEY")
	weatherKey := mustEnv("OPENWEATHERMAP_API_KEY")
	placesKey := mustEnv("GPLACES_API_KEY")
	exchangeKey := mustEnv("EXCHANGE_RATE_API_KEY")

	settings, err := config.Load(os.Getenv("GLOBALGUIDE_CONFIG"))
	if err != nil {
		log.Error("failed to load settings", "err", err)
		os.Exit(1)
	}

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

	handler, err := slackhandler.NewHandler(botToken, appToken, planner, log)
	if err != nil {
		log.Error("failed to create slack handler", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("slackbot starting")
	if err := handler.Run(ctx); err != nil {
		log.Error("handler exited with error", "err", err)
		os.Exit(1)
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("missing required env var", "key", key)
		os.Exit(1)
	}
	return v
}
