package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/infrastructure/inference"
	"imagine-server/image-api/internal/infrastructure/logger"
	"imagine-server/image-api/internal/infrastructure/observability"
	"imagine-server/image-api/internal/interfaces/httpserver"
)

// @title Image API
// @version 1.0
// @description HTTP facade over hosted text-to-image inference with a model capability registry
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	registry, err := buildRegistry(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build model registry")
	}

	catalogService := catalog.NewService(registry, log)
	inferenceClient := inference.NewHostedClient(cfg, log)
	generationService := generation.NewService(cfg, catalogService, inferenceClient, log)

	httpServer := httpserver.New(cfg, log, catalogService, generationService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// buildRegistry loads model specs from the configured YAML file when set,
// otherwise from the built-in catalog.
func buildRegistry(cfg *config.Config, log zerolog.Logger) (*catalog.Registry, error) {
	specs := catalog.BuiltinSpecs()
	if cfg.ModelsConfigFile != "" {
		loaded, err := catalog.LoadSpecsFile(cfg.ModelsConfigFile)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.ModelsConfigFile).Int("models", len(loaded)).Msg("loaded model registry override")
		specs = loaded
	}

	registry, err := catalog.NewRegistry(specs)
	if err != nil {
		return nil, err
	}
	log.Info().Int("models", len(registry.IDs())).Msg("model registry ready")
	return registry, nil
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
