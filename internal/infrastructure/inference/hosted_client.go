package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/infrastructure/metrics"
	"imagine-server/image-api/internal/utils/httpclients"
	"imagine-server/image-api/internal/utils/platformerrors"
)

// HostedClient talks to an OpenAI-compatible images endpoint exposed by the
// configured inference provider.
type HostedClient struct {
	cfg    *config.Config
	client *resty.Client
	log    zerolog.Logger
}

// NewHostedClient builds the provider client with the configured credential
// and timeout.
func NewHostedClient(cfg *config.Config, log zerolog.Logger) *HostedClient {
	client := httpclients.NewClient("inference-provider")
	client.SetTimeout(cfg.ProviderTimeout)
	client.SetRetryCount(0) // single attempt, provider errors are not retryable here
	if cfg.ProviderAPIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.ProviderAPIKey))
	}

	return &HostedClient{
		cfg:    cfg,
		client: client,
		log:    log.With().Str("component", "inference-client").Logger(),
	}
}

// providerRequest is the wire format for the images generation call. Steps,
// guidance, negative prompt and seed are provider extensions carried next to
// the standard OpenAI fields.
type providerRequest struct {
	Model             string  `json:"model,omitempty"`
	Prompt            string  `json:"prompt"`
	N                 int     `json:"n,omitempty"`
	Size              string  `json:"size,omitempty"`
	ResponseFormat    string  `json:"response_format,omitempty"`
	NumInferenceSteps int     `json:"num_inference_steps,omitempty"`
	GuidanceScale     float64 `json:"guidance_scale,omitempty"`
	NegativePrompt    string  `json:"negative_prompt,omitempty"`
	Seed              *int64  `json:"seed,omitempty"`
}

type providerResponse struct {
	Created int64                `json:"created"`
	Data    []providerDataItem   `json:"data"`
	Error   *providerErrorDetail `json:"error,omitempty"`
}

type providerDataItem struct {
	B64JSON       string `json:"b64_json,omitempty"`
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type providerErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Generate implements Client.Generate.
func (c *HostedClient) Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error) {
	endpoint := joinEndpoint(c.cfg.ProviderBaseURL, "/images/generations")

	c.log.Debug().
		Str("endpoint", endpoint).
		Str("model", request.Model).
		Int("width", request.Width).
		Int("height", request.Height).
		Msg("calling image provider")

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c.buildProviderRequest(request)).
		Post(endpoint)
	if err != nil {
		metrics.RecordProviderError(request.Model, "transport")
		c.log.Error().Err(err).Str("endpoint", endpoint).Msg("provider call failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("image provider call failed: %v", err),
			nil, "provider-transport-error")
	}

	respBytes := resp.Bytes()
	if resp.StatusCode() >= 400 {
		metrics.RecordProviderError(request.Model, fmt.Sprintf("http_%d", resp.StatusCode()))
		var errResp providerResponse
		if parseErr := json.Unmarshal(respBytes, &errResp); parseErr == nil && errResp.Error != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
				platformerrors.ErrorTypeExternal,
				fmt.Sprintf("image provider error: %s", errResp.Error.Message),
				nil, "provider-error")
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("image provider returned status %d: %s", resp.StatusCode(), string(respBytes)),
			nil, "provider-http-error")
	}

	var result providerResponse
	if err := json.Unmarshal(respBytes, &result); err != nil {
		c.log.Error().Err(err).Str("body", string(respBytes)).Msg("failed to parse provider response")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeInternal,
			"failed to parse image provider response",
			err, "provider-parse-error")
	}

	metrics.RecordGeneration(request.Model, time.Since(start).Seconds())

	created := result.Created
	if created == 0 {
		created = time.Now().Unix()
	}

	data := make([]ImageData, len(result.Data))
	for i, item := range result.Data {
		data[i] = ImageData{
			URL:           item.URL,
			B64JSON:       item.B64JSON,
			RevisedPrompt: item.RevisedPrompt,
		}
	}

	return &GenerateResponse{
		Created: created,
		Data:    data,
	}, nil
}

// Ping implements Client.Ping. Any HTTP response counts as reachable; only
// transport failures are reported.
func (c *HostedClient) Ping(ctx context.Context) error {
	_, err := c.client.R().
		SetContext(ctx).
		Get(c.cfg.ProviderBaseURL)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("image provider unreachable: %v", err),
			nil, "provider-unreachable")
	}
	return nil
}

func (c *HostedClient) buildProviderRequest(req *GenerateRequest) *providerRequest {
	out := &providerRequest{
		Model:          req.Model,
		Prompt:         req.Prompt,
		N:              1,
		ResponseFormat: req.ResponseFormat,
	}
	if out.ResponseFormat == "" {
		out.ResponseFormat = "b64_json"
	}
	if req.Width > 0 && req.Height > 0 {
		out.Size = fmt.Sprintf("%dx%d", req.Width, req.Height)
	}
	if req.NumInferenceSteps != nil {
		out.NumInferenceSteps = *req.NumInferenceSteps
	}
	if req.GuidanceScale != nil {
		out.GuidanceScale = *req.GuidanceScale
	}
	if req.NegativePrompt != nil {
		out.NegativePrompt = *req.NegativePrompt
	}
	if req.Seed != nil {
		seed := *req.Seed
		out.Seed = &seed
	}
	return out
}

func joinEndpoint(baseURL, path string) string {
	trimmedBase := strings.TrimSuffix(baseURL, "/")
	normalizedPath := "/" + strings.TrimPrefix(path, "/")
	if strings.HasSuffix(trimmedBase, "/v1") {
		return trimmedBase + normalizedPath
	}
	return trimmedBase + "/v1" + normalizedPath
}

// Ensure HostedClient implements Client.
var _ Client = (*HostedClient)(nil)
