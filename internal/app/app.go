package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sentryos/backend/internal/agent"
	"sentryos/backend/internal/api"
	"sentryos/backend/internal/config"
	"sentryos/backend/internal/database"
	"sentryos/backend/internal/repository"
	"sentryos/backend/internal/service"
	"sentryos/backend/internal/telemetry"
)

// App bundles the process-level resources so tests can build and inspect the
// wired application without starting the listener.
type App struct {
	Config    *config.Config
	DB        *sql.DB // nil when journaling is disabled
	Telemetry telemetry.Recorder
	Server    *http.Server

	flush func(time.Duration)
}

// NewApp wires config, telemetry, storage, the upstream provider, services,
// handlers and the HTTP server. Missing credentials degrade their subsystem
// instead of failing startup.
func NewApp(cfg *config.Config) (*App, error) {
	setupLogger(cfg.LogLevel)

	var recorder telemetry.Recorder = telemetry.Noop()
	var metricsHandler http.Handler
	flush := func(time.Duration) {}

	sdk, err := telemetry.NewRecorder(telemetry.Options{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
	})
	if err != nil {
		slog.Warn("Telemetry init failed, continuing without it.", "error", err)
	} else {
		recorder = sdk
		metricsHandler = sdk.MetricsHandler()
		flush = sdk.Flush
	}

	var db *sql.DB
	journal := repository.NewNoopJournal()
	if cfg.DatabasePath != "" {
		db, err = database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		journal = repository.NewSQLiteJournal(db)
		slog.Info("Exchange journal enabled.", "path", cfg.DatabasePath)
	} else {
		slog.Info("No DATABASE_PATH configured; exchange journal disabled.")
	}

	var provider agent.Provider
	if cfg.AnthropicAPIKey != "" {
		provider = agent.NewAnthropicProvider(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel)
	} else {
		slog.Warn("No ANTHROPIC_API_KEY configured; assistants will report an unconfigured upstream.")
		provider = agent.Unconfigured()
	}

	assistantService := service.NewAssistantService(provider, journal, recorder)
	analysisService := service.NewAnalysisService(provider, recorder)

	assistantHandler := api.NewAssistantHandler(assistantService, recorder)
	analysisHandler := api.NewAnalysisHandler(analysisService, recorder)
	router := api.NewRouter(assistantHandler, analysisHandler, metricsHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{
		Config:    cfg,
		DB:        db,
		Telemetry: recorder,
		Server:    server,
		flush:     flush,
	}, nil
}

// Run loads configuration, builds the app and serves until the listener
// stops. Returns a process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger here.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	application, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer application.flush(2 * time.Second)
	if application.DB != nil {
		defer func() {
			if err := application.DB.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	logConfigSource()

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
