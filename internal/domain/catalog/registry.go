package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownModel is returned when a model id has no registry entry.
var ErrUnknownModel = errors.New("model not found in registry")

// Registry is the immutable capability table for all supported models. It is
// built once at startup and is safe for unsynchronized concurrent reads; every
// accessor returns owned copies, never the backing storage.
type Registry struct {
	specs []ModelSpec
	byID  map[string]int
}

// NewRegistry validates the given specs and builds a registry preserving their
// order. It fails on the first spec violating a capability invariant.
func NewRegistry(specs []ModelSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]ModelSpec, 0, len(specs)),
		byID:  make(map[string]int, len(specs)),
	}
	for i, spec := range specs {
		if err := validateSpec(spec); err != nil {
			return nil, fmt.Errorf("model spec %d (%q): %w", i, spec.ID, err)
		}
		if _, exists := r.byID[spec.ID]; exists {
			return nil, fmt.Errorf("model spec %d: duplicate id %q", i, spec.ID)
		}
		r.byID[spec.ID] = len(r.specs)
		r.specs = append(r.specs, spec.clone())
	}
	return r, nil
}

func validateSpec(spec ModelSpec) error {
	if strings.TrimSpace(spec.ID) == "" {
		return errors.New("id must not be empty")
	}
	if spec.MaxWidth <= 0 || spec.MaxWidth%8 != 0 {
		return fmt.Errorf("max_width %d must be a positive multiple of 8", spec.MaxWidth)
	}
	if spec.MaxHeight <= 0 || spec.MaxHeight%8 != 0 {
		return fmt.Errorf("max_height %d must be a positive multiple of 8", spec.MaxHeight)
	}
	if spec.DefaultWidth < MinDimension || spec.DefaultWidth > spec.MaxWidth || spec.DefaultWidth%8 != 0 {
		return fmt.Errorf("default_width %d must be a multiple of 8 within [%d, %d]", spec.DefaultWidth, MinDimension, spec.MaxWidth)
	}
	if spec.DefaultHeight < MinDimension || spec.DefaultHeight > spec.MaxHeight || spec.DefaultHeight%8 != 0 {
		return fmt.Errorf("default_height %d must be a multiple of 8 within [%d, %d]", spec.DefaultHeight, MinDimension, spec.MaxHeight)
	}
	if spec.MinSteps < 1 {
		return fmt.Errorf("min_steps %d must be at least 1", spec.MinSteps)
	}
	if spec.MinSteps > spec.DefaultSteps || spec.DefaultSteps > spec.MaxSteps {
		return fmt.Errorf("steps range violated: min %d <= default %d <= max %d", spec.MinSteps, spec.DefaultSteps, spec.MaxSteps)
	}
	if spec.MinGuidance > spec.DefaultGuidance || spec.DefaultGuidance > spec.MaxGuidance {
		return fmt.Errorf("guidance range violated: min %v <= default %v <= max %v", spec.MinGuidance, spec.DefaultGuidance, spec.MaxGuidance)
	}
	return nil
}

// List returns all specs in registration order.
func (r *Registry) List() []ModelSpec {
	out := make([]ModelSpec, len(r.specs))
	for i, spec := range r.specs {
		out[i] = spec.clone()
	}
	return out
}

// Get returns the spec for the given id. The id is matched exactly, with no
// case or whitespace normalization.
func (r *Registry) Get(id string) (ModelSpec, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return ModelSpec{}, false
	}
	return r.specs[idx].clone(), true
}

// Exists reports whether the given id has a registry entry.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// FilterByCategory returns all specs whose category matches exactly.
func (r *Registry) FilterByCategory(category string) []ModelSpec {
	out := make([]ModelSpec, 0)
	for _, spec := range r.specs {
		if spec.Category == category {
			out = append(out, spec.clone())
		}
	}
	return out
}

// FilterByTag returns all specs carrying the given tag. Matching is exact and
// case-sensitive.
func (r *Registry) FilterByTag(tag string) []ModelSpec {
	out := make([]ModelSpec, 0)
	for _, spec := range r.specs {
		for _, t := range spec.Tags {
			if t == tag {
				out = append(out, spec.clone())
				break
			}
		}
	}
	return out
}

// Search returns specs whose name, description or any tag contains the query
// case-insensitively. An empty query returns the full registry. A spec
// matching on several fields is included once.
func (r *Registry) Search(query string) []ModelSpec {
	if query == "" {
		return r.List()
	}

	needle := strings.ToLower(query)
	out := make([]ModelSpec, 0)
	for _, spec := range r.specs {
		if r.matches(spec, needle) {
			out = append(out, spec.clone())
		}
	}
	return out
}

func (r *Registry) matches(spec ModelSpec, needle string) bool {
	if strings.Contains(strings.ToLower(spec.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(spec.Description), needle) {
		return true
	}
	for _, tag := range spec.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Summary aggregates counts by category and provider plus the sorted set of
// unique tags.
func (r *Registry) Summary() RegistrySummary {
	categories := make(map[string]int)
	providers := make(map[string]int)
	tagSet := make(map[string]struct{})

	for _, spec := range r.specs {
		categories[spec.Category]++
		providers[spec.Provider]++
		for _, tag := range spec.Tags {
			tagSet[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return RegistrySummary{
		TotalModels: len(r.specs),
		Categories:  categories,
		Providers:   providers,
		UniqueTags:  tags,
	}
}

// IDs returns all model ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.specs))
	for i, spec := range r.specs {
		out[i] = spec.ID
	}
	return out
}

// Names returns all display names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.specs))
	for i, spec := range r.specs {
		out[i] = spec.Name
	}
	return out
}

// UISummaries returns the trimmed per-model views for frontend listings.
func (r *Registry) UISummaries() []UIModelSummary {
	out := make([]UIModelSummary, len(r.specs))
	for i, spec := range r.specs {
		tags := make([]string, len(spec.Tags))
		copy(tags, spec.Tags)
		out[i] = UIModelSummary{
			ID:            spec.ID,
			Name:          spec.Name,
			Description:   spec.Description,
			Category:      spec.Category,
			EstimatedTime: spec.EstimatedTime,
			Tags:          tags,
			DefaultParams: DefaultParameters{
				Width:             spec.DefaultWidth,
				Height:            spec.DefaultHeight,
				NumInferenceSteps: spec.DefaultSteps,
				GuidanceScale:     spec.DefaultGuidance,
			},
		}
	}
	return out
}
