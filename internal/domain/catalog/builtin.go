package catalog

// BuiltinSpecs returns the default model capability table. The registry can be
// replaced wholesale at startup via a models config file; these entries are
// the curated set known to work with the hosted inference providers.
func BuiltinSpecs() []ModelSpec {
	return []ModelSpec{
		{
			ID:                     "black-forest-labs/FLUX.1-dev",
			Name:                   "FLUX.1 Dev",
			Description:            "High-quality image generation model with excellent prompt following",
			Provider:               "fal-ai",
			Category:               "general",
			MaxWidth:               2048,
			MaxHeight:              2048,
			DefaultWidth:           768,
			DefaultHeight:          768,
			SupportsNegativePrompt: true,
			SupportsSeed:           true,
			MinSteps:               20,
			MaxSteps:               50,
			DefaultSteps:           30,
			MinGuidance:            1.0,
			MaxGuidance:            20.0,
			DefaultGuidance:        7.5,
			EstimatedTime:          "15-30 seconds",
			Tags:                   []string{"realistic", "versatile", "high-quality"},
		},
		{
			ID:                     "ByteDance/SDXL-Lightning",
			Name:                   "SDXL Lightning",
			Description:            "Fast, high-quality image generation optimized for speed",
			Provider:               "fal-ai",
			Category:               "fast",
			MaxWidth:               1024,
			MaxHeight:              1024,
			DefaultWidth:           768,
			DefaultHeight:          768,
			SupportsNegativePrompt: true,
			SupportsSeed:           true,
			MinSteps:               4,
			MaxSteps:               20,
			DefaultSteps:           8,
			MinGuidance:            1.0,
			MaxGuidance:            12.0,
			DefaultGuidance:        7.0,
			EstimatedTime:          "5-10 seconds",
			Tags:                   []string{"fast", "efficient", "realistic"},
		},
		{
			ID:                     "stabilityai/stable-diffusion-xl-base-1.0",
			Name:                   "Stable Diffusion XL",
			Description:            "Popular and reliable image generation model",
			Provider:               "replicate",
			Category:               "general",
			MaxWidth:               1536,
			MaxHeight:              1536,
			DefaultWidth:           768,
			DefaultHeight:          768,
			SupportsNegativePrompt: true,
			SupportsSeed:           true,
			MinSteps:               20,
			MaxSteps:               100,
			DefaultSteps:           50,
			MinGuidance:            1.0,
			MaxGuidance:            20.0,
			DefaultGuidance:        7.5,
			EstimatedTime:          "20-40 seconds",
			Tags:                   []string{"reliable", "versatile", "popular"},
		},
		{
			ID:                     "ByteDance/Hyper-SD",
			Name:                   "Hyper-SD",
			Description:            "Advanced model with excellent detail and coherence",
			Provider:               "fal-ai",
			Category:               "general",
			MaxWidth:               1024,
			MaxHeight:              1024,
			DefaultWidth:           768,
			DefaultHeight:          768,
			SupportsNegativePrompt: true,
			SupportsSeed:           true,
			MinSteps:               15,
			MaxSteps:               40,
			DefaultSteps:           25,
			MinGuidance:            1.0,
			MaxGuidance:            15.0,
			DefaultGuidance:        7.5,
			EstimatedTime:          "10-20 seconds",
			Tags:                   []string{"detailed", "coherent", "balanced"},
		},
		{
			ID:                     "Qwen/Qwen-Image",
			Name:                   "Qwen Image",
			Description:            "Powerful model with strong artistic capabilities",
			Provider:               "nebius",
			Category:               "artistic",
			MaxWidth:               2048,
			MaxHeight:              2048,
			DefaultWidth:           768,
			DefaultHeight:          768,
			SupportsNegativePrompt: true,
			SupportsSeed:           true,
			MinSteps:               20,
			MaxSteps:               60,
			DefaultSteps:           30,
			MinGuidance:            1.0,
			MaxGuidance:            20.0,
			DefaultGuidance:        8.0,
			EstimatedTime:          "15-30 seconds",
			Tags:                   []string{"artistic", "creative", "versatile"},
		},
	}
}
