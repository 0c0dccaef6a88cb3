package responses

import (
	"imagine-server/image-api/internal/domain/catalog"
)

// ModelListResponse wraps the model list in an OpenAI-style envelope.
type ModelListResponse struct {
	Object string              `json:"object"`
	Data   []catalog.ModelSpec `json:"data"`
}

// UIModelListResponse is the trimmed model list served to frontends.
type UIModelListResponse struct {
	Object string                   `json:"object"`
	Data   []catalog.UIModelSummary `json:"data"`
}

// ModelDefaultsResponse pairs a model id with its generation defaults.
type ModelDefaultsResponse struct {
	ID       string                    `json:"id"`
	Defaults catalog.DefaultParameters `json:"defaults"`
}

// BuildModelListResponse builds the full capability listing.
func BuildModelListResponse(specs []catalog.ModelSpec) ModelListResponse {
	if specs == nil {
		specs = []catalog.ModelSpec{}
	}
	return ModelListResponse{Object: "list", Data: specs}
}

// BuildUIModelListResponse builds the frontend listing.
func BuildUIModelListResponse(summaries []catalog.UIModelSummary) UIModelListResponse {
	if summaries == nil {
		summaries = []catalog.UIModelSummary{}
	}
	return UIModelListResponse{Object: "list", Data: summaries}
}
