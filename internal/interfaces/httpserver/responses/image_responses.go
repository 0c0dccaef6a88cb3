package responses

import (
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/infrastructure/inference"
)

// GenerateImageResponse represents a completed image generation.
// @Description Image generation response with resolved request metadata
type GenerateImageResponse struct {
	// Created is the Unix timestamp of when the images were generated.
	Created int64 `json:"created" example:"1699000000"`

	// Data contains the generated images.
	Data []inference.ImageData `json:"data"`

	// Metadata echoes the request as it was actually executed, after default
	// merging and parameter clamping.
	Metadata generation.Metadata `json:"metadata"`
}

// BuildGenerateImageResponse maps a domain result onto the wire format.
func BuildGenerateImageResponse(result *generation.Result) GenerateImageResponse {
	data := result.Data
	if data == nil {
		data = []inference.ImageData{}
	}
	return GenerateImageResponse{
		Created:  result.Created,
		Data:     data,
		Metadata: result.Metadata,
	}
}
