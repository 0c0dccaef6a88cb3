package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/infrastructure/inference"
	"imagine-server/image-api/internal/infrastructure/metrics"
	"imagine-server/image-api/internal/utils/platformerrors"
)

// maxSeed is the largest seed accepted by the diffusion backends (uint32 range).
const maxSeed = int64(1)<<32 - 1

// Request is a fully decoded generation request. Model may be empty, in which
// case the configured default model is used. Nil parameter fields are absent
// and fall back to the model defaults only where a value is mandatory on the
// wire (width and height).
type Request struct {
	Model          string
	Prompt         string
	Params         catalog.GenerationParams
	ResponseFormat string
}

// Metadata echoes back what was actually sent to the provider after default
// merging and clamping.
type Metadata struct {
	ModelID           string   `json:"model_id"`
	ModelName         string   `json:"model_name"`
	Prompt            string   `json:"prompt"`
	Width             int      `json:"width"`
	Height            int      `json:"height"`
	NumInferenceSteps *int     `json:"num_inference_steps,omitempty"`
	GuidanceScale     *float64 `json:"guidance_scale,omitempty"`
	Seed              *int64   `json:"seed,omitempty"`
	NegativePrompt    *string  `json:"negative_prompt,omitempty"`
	Timestamp         int64    `json:"timestamp"`
	GenerationTimeSec float64  `json:"generation_time_sec"`
}

// Result is a completed generation: the provider images plus the resolved
// request metadata.
type Result struct {
	Created  int64                 `json:"created"`
	Data     []inference.ImageData `json:"data"`
	Metadata Metadata              `json:"metadata"`
}

// Service validates generation requests against the model registry and
// forwards them to the hosted inference provider.
type Service struct {
	cfg     *config.Config
	catalog *catalog.Service
	client  inference.Client
	log     zerolog.Logger
}

// NewService builds the generation service.
func NewService(cfg *config.Config, catalogService *catalog.Service, client inference.Client, log zerolog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		catalog: catalogService,
		client:  client,
		log:     log.With().Str("component", "generation-service").Logger(),
	}
}

// Generate runs one text-to-image inference. The flow is: resolve model,
// validate the prompt, clamp parameters against the model's capability spec,
// fill width and height from defaults when absent, then call the provider.
func (s *Service) Generate(ctx context.Context, req *Request) (*Result, error) {
	modelID := strings.TrimSpace(req.Model)
	if modelID == "" {
		modelID = s.cfg.DefaultModel
	}

	spec, err := s.catalog.GetModel(ctx, modelID)
	if err != nil {
		metrics.RecordValidationRejection("unknown_model")
		return nil, err
	}

	if err := s.validatePrompt(ctx, req); err != nil {
		return nil, err
	}

	params, err := s.catalog.ValidateParams(ctx, modelID, req.Params)
	if err != nil {
		return nil, err
	}

	width := spec.DefaultWidth
	if params.Width != nil {
		width = *params.Width
	}
	height := spec.DefaultHeight
	if params.Height != nil {
		height = *params.Height
	}

	s.log.Info().
		Str("model", modelID).
		Int("width", width).
		Int("height", height).
		Msg("starting image generation")

	start := time.Now()
	resp, err := s.client.Generate(ctx, &inference.GenerateRequest{
		Model:             modelID,
		Prompt:            strings.TrimSpace(req.Prompt),
		Width:             width,
		Height:            height,
		NumInferenceSteps: params.NumInferenceSteps,
		GuidanceScale:     params.GuidanceScale,
		NegativePrompt:    params.NegativePrompt,
		Seed:              params.Seed,
		ResponseFormat:    req.ResponseFormat,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	s.log.Info().
		Str("model", modelID).
		Dur("generation_time", elapsed).
		Int("images", len(resp.Data)).
		Msg("image generation completed")

	return &Result{
		Created: resp.Created,
		Data:    resp.Data,
		Metadata: Metadata{
			ModelID:           modelID,
			ModelName:         spec.Name,
			Prompt:            strings.TrimSpace(req.Prompt),
			Width:             width,
			Height:            height,
			NumInferenceSteps: params.NumInferenceSteps,
			GuidanceScale:     params.GuidanceScale,
			Seed:              params.Seed,
			NegativePrompt:    params.NegativePrompt,
			Timestamp:         time.Now().Unix(),
			GenerationTimeSec: elapsed.Seconds(),
		},
	}, nil
}

// Ready reports whether the inference provider is reachable.
func (s *Service) Ready(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Service) validatePrompt(ctx context.Context, req *Request) error {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		metrics.RecordValidationRejection("empty_prompt")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"prompt must not be empty", nil, "")
	}
	if len(prompt) > s.cfg.MaxPromptLength {
		metrics.RecordValidationRejection("prompt_too_long")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("prompt exceeds maximum length of %d characters", s.cfg.MaxPromptLength),
			nil, "")
	}
	if req.Params.NegativePrompt != nil && len(*req.Params.NegativePrompt) > s.cfg.MaxNegativePromptLength {
		metrics.RecordValidationRejection("negative_prompt_too_long")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("negative_prompt exceeds maximum length of %d characters", s.cfg.MaxNegativePromptLength),
			nil, "")
	}
	if req.Params.Seed != nil && (*req.Params.Seed < 0 || *req.Params.Seed > maxSeed) {
		metrics.RecordValidationRejection("seed_out_of_range")
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("seed must be between 0 and %d", maxSeed),
			nil, "")
	}
	return nil
}
