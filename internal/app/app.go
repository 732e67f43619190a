// Package app provides application initialization and dependency injection.
//
// App is the container that wires configuration, logging, the Gemini client
// and the conversation services together with explicit constructors. Each
// conversation session owns its own chat service; the client, generator and
// intent detector are shared.
package app

import (
	"context"
	"fmt"

	"github.com/learnpath/learnpath/internal/chat"
	"github.com/learnpath/learnpath/internal/config"
	"github.com/learnpath/learnpath/internal/i18n"
	"github.com/learnpath/learnpath/internal/llm/gemini"
	applog "github.com/learnpath/learnpath/internal/log"
	"github.com/learnpath/learnpath/internal/roadmap"
)

// App is the application container.
type App struct {
	Config   *config.Config
	Logger   applog.Logger
	Client   *gemini.Client
	Messages i18n.Provider
	Intent   *chat.IntentDetector
	Roadmaps *roadmap.Generator

	cancel context.CancelFunc
}

// New loads configuration and wires all shared components.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig wires all shared components from an already-validated
// configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := applog.New(applog.Config{
		Level:    applog.ParseLevel(cfg.LogLevel),
		JSON:     cfg.LogJSON,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	i18n.Init(cfg.Language)

	appCtx, cancel := context.WithCancel(ctx)

	client, err := gemini.New(appCtx, gemini.Config{
		APIKey:         cfg.GeminiAPIKey,
		ModelName:      cfg.ModelName,
		SystemPrompt:   gemini.DefaultSystemPrompt,
		Temperature:    cfg.Temperature,
		RequestTimeout: cfg.RequestTimeout,
		StreamTimeout:  cfg.StreamTimeout,
		Logger:         logger,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}

	generator, err := roadmap.NewGenerator(roadmap.Config{
		Client:      client,
		Logger:      logger,
		MaxAttempts: cfg.RoadmapMaxAttempts,
		DurationFn:  func(roadmap.UserProfile) int { return cfg.RoadmapDefaultWeeks },
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("initializing roadmap generator: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Messages: i18n.Provider{},
		Intent:   chat.NewIntentDetector(client, logger),
		Roadmaps: generator,
		cancel:   cancel,
	}, nil
}

// NewChatService creates a fresh conversation service with its own history
// and session clock. Call once per conversation; services are not shared
// across sessions.
func (a *App) NewChatService() (*chat.Service, error) {
	svc, err := chat.New(chat.Config{
		Client:          a.Client,
		Messages:        a.Messages,
		Logger:          a.Logger,
		MaxInputLength:  a.Config.MaxInputLength,
		ContextMessages: a.Config.ContextMessages,
		SessionTimeout:  a.Config.SessionTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating chat service: %w", err)
	}
	return svc, nil
}

// Close shuts down the application context.
func (a *App) Close() error {
	a.Logger.Info("shutting down application")
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}
