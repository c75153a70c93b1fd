package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/futig/touchdown/internal/api"
	applicationapi "github.com/futig/touchdown/internal/api/application"
	"github.com/futig/touchdown/internal/config"
	"github.com/futig/touchdown/internal/form"
	pkglogger "github.com/futig/touchdown/internal/pkg/logger"
	"github.com/futig/touchdown/internal/pkg/validator"
	"github.com/futig/touchdown/internal/repository"
	"github.com/futig/touchdown/internal/terminal"
	"github.com/futig/touchdown/internal/usecase/application"
	"go.uber.org/zap"
)

// Build creates the HTTP application
func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	relay := setupRelay(cfg, logger)
	applicationRepo := repository.NewApplicationCache(cfg.SessionCfg.TTL, cfg.SessionCfg.CleanupInterval)
	v := validator.New()

	applicationUC := application.NewUsecase(applicationRepo, v, relay, logger)
	logger.Info("Use cases initialized")

	applicationHandler := applicationapi.NewHandler(applicationUC, v)
	router := api.SetupRouter(applicationHandler, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

// BuildTerminal creates the interactive terminal questionnaire
func BuildTerminal() (*terminal.Runner, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Debug("Building terminal questionnaire",
		zap.String("environment", cfg.Environment),
	)

	f := form.New(setupRelay(cfg, logger), validator.New())
	return terminal.NewRunner(f, terminal.NewSurveyDriver()), logger, nil
}
