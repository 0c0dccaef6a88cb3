//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/infrastructure/inference"
	"imagine-server/image-api/internal/infrastructure/logger"
	"imagine-server/image-api/internal/interfaces/httpserver"
)

var registrySet = wire.NewSet(
	provideRegistry,
	catalog.NewService,
)

var inferenceSet = wire.NewSet(
	inference.NewHostedClient,
	wire.Bind(new(inference.Client), new(*inference.HostedClient)),
)

// BuildApplication assembles the image API with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		registrySet,
		inferenceSet,
		generation.NewService,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func provideRegistry(cfg *config.Config, log zerolog.Logger) (*catalog.Registry, error) {
	return buildRegistry(cfg, log)
}
