package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/utils/platformerrors"
)

// Service exposes registry queries to the interface layer, translating
// registry errors into platform errors.
type Service struct {
	registry *Registry
	log      zerolog.Logger
}

// NewService wraps a registry for use by handlers.
func NewService(registry *Registry, log zerolog.Logger) *Service {
	return &Service{
		registry: registry,
		log:      log.With().Str("component", "catalog-service").Logger(),
	}
}

// Registry returns the underlying capability table.
func (s *Service) Registry() *Registry {
	return s.registry
}

// ListModels returns every registered model spec.
func (s *Service) ListModels(ctx context.Context) []ModelSpec {
	return s.registry.List()
}

// GetModel returns the spec for the given id.
func (s *Service) GetModel(ctx context.Context, id string) (ModelSpec, error) {
	spec, ok := s.registry.Get(id)
	if !ok {
		s.log.Warn().Str("model_id", id).Msg("model not found")
		return ModelSpec{}, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("model %q not found in registry", id),
			ErrUnknownModel, "")
	}
	return spec, nil
}

// ModelsByCategory returns models with an exactly matching category.
func (s *Service) ModelsByCategory(ctx context.Context, category string) []ModelSpec {
	return s.registry.FilterByCategory(category)
}

// ModelsByTag returns models carrying the given tag.
func (s *Service) ModelsByTag(ctx context.Context, tag string) []ModelSpec {
	return s.registry.FilterByTag(tag)
}

// SearchModels returns models matching the query across name, description and
// tags.
func (s *Service) SearchModels(ctx context.Context, query string) []ModelSpec {
	return s.registry.Search(query)
}

// Summary returns registry-wide statistics.
func (s *Service) Summary(ctx context.Context) RegistrySummary {
	return s.registry.Summary()
}

// UISummaries returns the trimmed model list for frontend display.
func (s *Service) UISummaries(ctx context.Context) []UIModelSummary {
	return s.registry.UISummaries()
}

// Defaults returns the generation defaults for the given model.
func (s *Service) Defaults(ctx context.Context, id string) (DefaultParameters, error) {
	defaults, err := s.registry.DefaultsFor(id)
	if err != nil {
		return DefaultParameters{}, s.wrapLookupError(ctx, id, err)
	}
	return defaults, nil
}

// ValidateParams clamps the given parameter bag against the model's ranges.
func (s *Service) ValidateParams(ctx context.Context, id string, params GenerationParams) (GenerationParams, error) {
	validated, err := s.registry.ValidateParams(id, params)
	if err != nil {
		return GenerationParams{}, s.wrapLookupError(ctx, id, err)
	}
	return validated, nil
}

func (s *Service) wrapLookupError(ctx context.Context, id string, err error) error {
	if errors.Is(err, ErrUnknownModel) {
		s.log.Warn().Str("model_id", id).Msg("model not found")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("model %q not found in registry", id),
			err, "")
	}
	return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "registry lookup failed")
}
