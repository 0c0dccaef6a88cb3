package catalog

// MinDimension is the hard floor for output width and height. It is a fixed
// property of the diffusion backends, deliberately independent of the
// MIN_IMAGE_SIZE config setting.
const MinDimension = 256

// GenerationParams is the caller-supplied parameter bag. Nil fields are
// absent: the validator leaves them absent rather than filling defaults, so
// callers can distinguish "not sent" from "sent and clamped".
type GenerationParams struct {
	Width             *int     `json:"width,omitempty"`
	Height            *int     `json:"height,omitempty"`
	NumInferenceSteps *int     `json:"num_inference_steps,omitempty"`
	GuidanceScale     *float64 `json:"guidance_scale,omitempty"`
	Seed              *int64   `json:"seed,omitempty"`
	NegativePrompt    *string  `json:"negative_prompt,omitempty"`
}

// ValidateParams clamps every present field into the model's supported range
// and drops fields the model does not accept. It returns ErrUnknownModel when
// the id has no registry entry.
//
// Width and height are clamped to [MinDimension, max] first and rounded down
// to a multiple of 8 second. The order matters: a max bound that is not
// 8-aligned would otherwise produce an out-of-range value.
func (r *Registry) ValidateParams(id string, params GenerationParams) (GenerationParams, error) {
	idx, ok := r.byID[id]
	if !ok {
		return GenerationParams{}, ErrUnknownModel
	}
	spec := r.specs[idx]

	validated := GenerationParams{}

	if params.Width != nil {
		width := clampInt(*params.Width, MinDimension, spec.MaxWidth)
		width = (width / 8) * 8
		validated.Width = &width
	}

	if params.Height != nil {
		height := clampInt(*params.Height, MinDimension, spec.MaxHeight)
		height = (height / 8) * 8
		validated.Height = &height
	}

	if params.NumInferenceSteps != nil {
		steps := clampInt(*params.NumInferenceSteps, spec.MinSteps, spec.MaxSteps)
		validated.NumInferenceSteps = &steps
	}

	if params.GuidanceScale != nil {
		guidance := clampFloat(*params.GuidanceScale, spec.MinGuidance, spec.MaxGuidance)
		validated.GuidanceScale = &guidance
	}

	if params.Seed != nil && spec.SupportsSeed {
		seed := *params.Seed
		validated.Seed = &seed
	}

	if params.NegativePrompt != nil && spec.SupportsNegativePrompt && *params.NegativePrompt != "" {
		negative := *params.NegativePrompt
		validated.NegativePrompt = &negative
	}

	return validated, nil
}

// DefaultsFor returns the generation defaults for the given model. Seed and
// negative prompt are excluded: they have no universal default.
func (r *Registry) DefaultsFor(id string) (DefaultParameters, error) {
	idx, ok := r.byID[id]
	if !ok {
		return DefaultParameters{}, ErrUnknownModel
	}
	spec := r.specs[idx]
	return DefaultParameters{
		Width:             spec.DefaultWidth,
		Height:            spec.DefaultHeight,
		NumInferenceSteps: spec.DefaultSteps,
		GuidanceScale:     spec.DefaultGuidance,
	}, nil
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
