package inference

import "context"

// GenerateRequest carries a fully validated generation request to the hosted
// provider. Optional fields are nil when the model does not accept them.
type GenerateRequest struct {
	Model  string
	Prompt string
	Width  int
	Height int

	NumInferenceSteps *int
	GuidanceScale     *float64
	NegativePrompt    *string
	Seed              *int64

	// ResponseFormat selects "b64_json" or "url"; empty means b64_json.
	ResponseFormat string
}

// ImageData represents a single generated image.
type ImageData struct {
	// URL is set when the provider responds with a hosted image link.
	URL string `json:"url,omitempty"`

	// B64JSON is the base64-encoded image payload.
	B64JSON string `json:"b64_json,omitempty"`

	// RevisedPrompt is the prompt the provider actually used, if it rewrote it.
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// GenerateResponse is the provider result normalized to one shape.
type GenerateResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

// Client is the boundary to the hosted text-to-image provider. The façade has
// no knowledge of the wire protocol beyond this interface.
type Client interface {
	// Generate performs a single inference call. No retries: every error the
	// provider returns is deterministic from the caller's perspective and is
	// surfaced as-is.
	Generate(ctx context.Context, request *GenerateRequest) (*GenerateResponse, error)

	// Ping checks provider reachability for readiness reporting.
	Ping(ctx context.Context) error
}
