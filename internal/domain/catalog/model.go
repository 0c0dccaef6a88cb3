package catalog

// ModelSpec describes one hosted text-to-image model: its identity, the
// parameter ranges it accepts and the defaults it ships with. Specs are
// immutable once the registry is built.
type ModelSpec struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Provider    string `json:"provider" yaml:"provider"`
	Category    string `json:"category" yaml:"category"`

	MaxWidth      int `json:"max_width" yaml:"max_width"`
	MaxHeight     int `json:"max_height" yaml:"max_height"`
	DefaultWidth  int `json:"default_width" yaml:"default_width"`
	DefaultHeight int `json:"default_height" yaml:"default_height"`

	SupportsNegativePrompt bool `json:"supports_negative_prompt" yaml:"supports_negative_prompt"`
	SupportsSeed           bool `json:"supports_seed" yaml:"supports_seed"`

	MinSteps     int `json:"min_steps" yaml:"min_steps"`
	MaxSteps     int `json:"max_steps" yaml:"max_steps"`
	DefaultSteps int `json:"default_steps" yaml:"default_steps"`

	MinGuidance     float64 `json:"min_guidance" yaml:"min_guidance"`
	MaxGuidance     float64 `json:"max_guidance" yaml:"max_guidance"`
	DefaultGuidance float64 `json:"default_guidance" yaml:"default_guidance"`

	EstimatedTime string   `json:"estimated_time" yaml:"estimated_time"`
	Tags          []string `json:"tags" yaml:"tags"`
}

// clone returns an independent copy so registry internals never leak by
// mutable reference.
func (s ModelSpec) clone() ModelSpec {
	out := s
	if s.Tags != nil {
		out.Tags = make([]string, len(s.Tags))
		copy(out.Tags, s.Tags)
	}
	return out
}

// DefaultParameters are the generation defaults sourced from a spec. Seed and
// negative prompt have no universal default and are never included.
type DefaultParameters struct {
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

// RegistrySummary aggregates registry-wide statistics.
type RegistrySummary struct {
	TotalModels int            `json:"total_models"`
	Categories  map[string]int `json:"categories"`
	Providers   map[string]int `json:"providers"`
	UniqueTags  []string       `json:"unique_tags"`
}

// UIModelSummary is the trimmed per-model view served to frontends.
type UIModelSummary struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	EstimatedTime string            `json:"estimated_time"`
	Tags          []string          `json:"tags"`
	DefaultParams DefaultParameters `json:"default_params"`
}
