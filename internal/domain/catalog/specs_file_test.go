package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specsYAML = `models:
  - id: test/model
    name: Test Model
    description: A model used in tests
    provider: test-provider
    category: general
    max_width: 1024
    max_height: 1024
    default_width: 768
    default_height: 768
    supports_negative_prompt: true
    supports_seed: false
    min_steps: 4
    max_steps: 20
    default_steps: 8
    min_guidance: 1.0
    max_guidance: 12.0
    default_guidance: 7.0
    estimated_time: 5-10 seconds
    tags: [fast, efficient]
`

func TestLoadSpecsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yml")
	require.NoError(t, os.WriteFile(path, []byte(specsYAML), 0o600))

	specs, err := LoadSpecsFile(path)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	spec := specs[0]
	assert.Equal(t, "test/model", spec.ID)
	assert.Equal(t, 1024, spec.MaxWidth)
	assert.Equal(t, 8, spec.DefaultSteps)
	assert.False(t, spec.SupportsSeed)
	assert.Equal(t, []string{"fast", "efficient"}, spec.Tags)

	_, err = NewRegistry(specs)
	assert.NoError(t, err, "loaded specs pass registry invariants")
}

func TestLoadSpecsFileErrors(t *testing.T) {
	_, err := LoadSpecsFile("")
	assert.Error(t, err)

	_, err = LoadSpecsFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte("models: []\n"), 0o600))
	_, err = LoadSpecsFile(empty)
	assert.Error(t, err, "a config without models is rejected")

	malformed := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(malformed, []byte("models: {not: [a, list"), 0o600))
	_, err = LoadSpecsFile(malformed)
	assert.Error(t, err)
}
