package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/utils/platformerrors"
)

func testClient(baseURL string) *HostedClient {
	cfg := &config.Config{
		ProviderBaseURL: baseURL,
		ProviderAPIKey:  "test-key",
		ProviderTimeout: 5 * time.Second,
	}
	return NewHostedClient(cfg, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestGenerateSendsProviderRequest(t *testing.T) {
	var captured map[string]any
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1699000000,"data":[{"b64_json":"aW1hZ2U="}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	resp, err := client.Generate(context.Background(), &GenerateRequest{
		Model:             "test/model",
		Prompt:            "a cat",
		Width:             1024,
		Height:            768,
		NumInferenceSteps: intPtr(28),
		GuidanceScale:     floatPtr(3.5),
		NegativePrompt:    strPtr("blurry"),
		Seed:              int64Ptr(42),
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/images/generations", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)

	assert.Equal(t, "test/model", captured["model"])
	assert.Equal(t, "a cat", captured["prompt"])
	assert.Equal(t, "1024x768", captured["size"])
	assert.Equal(t, "b64_json", captured["response_format"], "b64_json is the default format")
	assert.Equal(t, float64(28), captured["num_inference_steps"])
	assert.Equal(t, 3.5, captured["guidance_scale"])
	assert.Equal(t, "blurry", captured["negative_prompt"])
	assert.Equal(t, float64(42), captured["seed"])

	assert.Equal(t, int64(1699000000), resp.Created)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "aW1hZ2U=", resp.Data[0].B64JSON)
}

func TestGenerateOmitsAbsentParams(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"created":1,"data":[]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), &GenerateRequest{
		Model:  "test/model",
		Prompt: "a cat",
		Width:  512,
		Height: 512,
	})
	require.NoError(t, err)

	assert.NotContains(t, captured, "num_inference_steps")
	assert.NotContains(t, captured, "guidance_scale")
	assert.NotContains(t, captured, "negative_prompt")
	assert.NotContains(t, captured, "seed")
}

func TestGenerateParsesProviderErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"message":"model is overloaded","type":"server_error"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), &GenerateRequest{Model: "test/model", Prompt: "x"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "model is overloaded")
}

func TestGenerateHandlesOpaqueHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Generate(context.Background(), &GenerateRequest{Model: "test/model", Prompt: "x"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "502")
}

func TestGenerateDefaultsCreatedTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"url":"https://img.example/1.png"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	resp, err := client.Generate(context.Background(), &GenerateRequest{Model: "test/model", Prompt: "x"})
	require.NoError(t, err)
	assert.Greater(t, resp.Created, int64(0), "missing created falls back to now")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any HTTP response counts as reachable
	}))
	client := testClient(server.URL)
	assert.NoError(t, client.Ping(context.Background()))

	server.Close()
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestJoinEndpoint(t *testing.T) {
	tests := []struct {
		base   string
		expect string
	}{
		{"https://router.huggingface.co", "https://router.huggingface.co/v1/images/generations"},
		{"https://router.huggingface.co/", "https://router.huggingface.co/v1/images/generations"},
		{"https://api.example.com/v1", "https://api.example.com/v1/images/generations"},
		{"https://api.example.com/v1/", "https://api.example.com/v1/images/generations"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expect, joinEndpoint(tc.base, "/images/generations"), "base %q", tc.base)
	}
}
