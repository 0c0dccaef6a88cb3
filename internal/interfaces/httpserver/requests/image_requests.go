package requests

import (
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
)

// GenerateImageRequest represents a text-to-image generation request.
// Parameter fields are pointers so that absent and zero are distinguishable;
// out-of-range values are clamped against the model's capability spec rather
// than rejected.
// @Description Text-to-image generation request
type GenerateImageRequest struct {
	// Model is the registry id of the model to use. Optional, defaults to the
	// configured default model.
	Model string `json:"model,omitempty" example:"black-forest-labs/FLUX.1-dev"`

	// Prompt is the text description of the desired image. Required.
	Prompt string `json:"prompt" binding:"required" example:"A serene mountain landscape at sunset"`

	// Width of the output image in pixels. Clamped to the model's range and
	// rounded down to a multiple of 8.
	Width *int `json:"width,omitempty" example:"1024"`

	// Height of the output image in pixels. Clamped like width.
	Height *int `json:"height,omitempty" example:"1024"`

	// NumInferenceSteps is the number of denoising steps.
	NumInferenceSteps *int `json:"num_inference_steps,omitempty" example:"28"`

	// GuidanceScale is the classifier-free guidance scale.
	GuidanceScale *float64 `json:"guidance_scale,omitempty" example:"3.5"`

	// Seed fixes the random seed for reproducible output. Dropped silently
	// when the model does not support seeding.
	Seed *int64 `json:"seed,omitempty" example:"42"`

	// NegativePrompt describes what to avoid. Dropped silently when the model
	// does not support negative prompts.
	NegativePrompt *string `json:"negative_prompt,omitempty" example:"blurry, low quality"`

	// ResponseFormat determines output format. Valid values: "url", "b64_json".
	// Default: "b64_json".
	ResponseFormat string `json:"response_format,omitempty" example:"b64_json"`
}

// ToDomain converts the wire request into a domain generation request.
func (r *GenerateImageRequest) ToDomain() *generation.Request {
	return &generation.Request{
		Model:          r.Model,
		Prompt:         r.Prompt,
		ResponseFormat: r.ResponseFormat,
		Params: catalog.GenerationParams{
			Width:             r.Width,
			Height:            r.Height,
			NumInferenceSteps: r.NumInferenceSteps,
			GuidanceScale:     r.GuidanceScale,
			Seed:              r.Seed,
			NegativePrompt:    r.NegativePrompt,
		},
	}
}
