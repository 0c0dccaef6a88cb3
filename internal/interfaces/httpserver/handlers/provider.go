package handlers

import (
	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
)

// Provider wires HTTP handlers.
type Provider struct {
	Models *ModelHandler
	Images *ImageHandler
}

func NewProvider(cfg *config.Config, catalogService *catalog.Service, generationService *generation.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Models: NewModelHandler(cfg, catalogService, log),
		Images: NewImageHandler(cfg, generationService, log),
	}
}
