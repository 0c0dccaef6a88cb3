package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/infrastructure/inference"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubClient struct {
	lastRequest *inference.GenerateRequest
	pingErr     error
}

func (s *stubClient) Generate(ctx context.Context, req *inference.GenerateRequest) (*inference.GenerateResponse, error) {
	s.lastRequest = req
	return &inference.GenerateResponse{
		Created: 1699000000,
		Data:    []inference.ImageData{{B64JSON: "aW1hZ2U="}},
	}, nil
}

func (s *stubClient) Ping(ctx context.Context) error {
	return s.pingErr
}

func newTestServer(t *testing.T, client inference.Client) *HttpServer {
	t.Helper()
	cfg := &config.Config{
		ServiceName:             "image-api",
		Environment:             "test",
		HTTPPort:                8188,
		DefaultModel:            "black-forest-labs/FLUX.1-dev",
		MaxPromptLength:         1000,
		MaxNegativePromptLength: 500,
	}

	registry, err := catalog.NewRegistry(catalog.BuiltinSpecs())
	require.NoError(t, err)

	log := zerolog.Nop()
	catalogService := catalog.NewService(registry, log)
	generationService := generation.NewService(cfg, catalogService, client, log)
	return New(cfg, log, catalogService, generationService)
}

func doRequest(server *HttpServer, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(server, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(server, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "image-api")
}

func TestReadyzReportsProviderOutage(t *testing.T) {
	server := newTestServer(t, &stubClient{pingErr: assert.AnError})

	rec := doRequest(server, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListModels(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Object string              `json:"object"`
		Data   []catalog.ModelSpec `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	assert.Len(t, resp.Data, 5)
}

func TestListModelsFilters(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	tests := []struct {
		query  string
		expect int
	}{
		{"?search=flux", 1},
		{"?search=FAST", 1},
		{"?category=general", 3},
		{"?category=General", 0},
		{"?tag=artistic", 1},
		{"?search=no-such-model", 0},
	}

	for _, tc := range tests {
		rec := doRequest(server, http.MethodGet, "/v1/models"+tc.query, "")
		require.Equal(t, http.StatusOK, rec.Code, tc.query)

		var resp struct {
			Data []catalog.ModelSpec `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Data, tc.expect, tc.query)
	}
}

func TestListModelsUIView(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models?ui=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []catalog.UIModelSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 5)
	assert.Equal(t, 768, resp.Data[0].DefaultParams.Width)
	assert.NotEmpty(t, resp.Data[0].EstimatedTime)
}

func TestGetModel(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models/black-forest-labs/FLUX.1-dev", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var spec catalog.ModelSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "black-forest-labs/FLUX.1-dev", spec.ID)
	assert.Equal(t, 2048, spec.MaxWidth)
}

func TestGetModelNotFound(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models/unknown/model", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetModelDefaultsView(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models/black-forest-labs/FLUX.1-dev?view=defaults", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID       string                    `json:"id"`
		Defaults catalog.DefaultParameters `json:"defaults"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "black-forest-labs/FLUX.1-dev", resp.ID)
	assert.Equal(t, catalog.DefaultParameters{
		Width:             768,
		Height:            768,
		NumInferenceSteps: 30,
		GuidanceScale:     7.5,
	}, resp.Defaults)
}

func TestGetModelSummary(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary catalog.RegistrySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 5, summary.TotalModels)
	assert.Equal(t, 3, summary.Categories["general"])
	assert.NotEmpty(t, summary.UniqueTags)
}

func TestGenerateImage(t *testing.T) {
	client := &stubClient{}
	server := newTestServer(t, client)

	body := `{"model":"ByteDance/SDXL-Lightning","prompt":"a cat","width":5000,"num_inference_steps":2,"seed":42}`
	rec := doRequest(server, http.MethodPost, "/v1/images/generations", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NotNil(t, client.lastRequest)
	assert.Equal(t, 1024, client.lastRequest.Width, "width clamped to the Lightning max")
	require.NotNil(t, client.lastRequest.NumInferenceSteps)
	assert.Equal(t, 4, *client.lastRequest.NumInferenceSteps, "steps clamped to the Lightning min")

	var resp struct {
		Created  int64 `json:"created"`
		Data     []any `json:"data"`
		Metadata struct {
			ModelID string `json:"model_id"`
			Width   int    `json:"width"`
			Seed    *int64 `json:"seed"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1699000000), resp.Created)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "ByteDance/SDXL-Lightning", resp.Metadata.ModelID)
	assert.Equal(t, 1024, resp.Metadata.Width)
	require.NotNil(t, resp.Metadata.Seed)
	assert.Equal(t, int64(42), *resp.Metadata.Seed)
}

func TestGenerateImageMissingPrompt(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodPost, "/v1/images/generations", `{"model":"ByteDance/SDXL-Lightning"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateImageUnknownModel(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodPost, "/v1/images/generations", `{"model":"missing/model","prompt":"a cat"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponsesCarryRequestID(t *testing.T) {
	server := newTestServer(t, &stubClient{})

	rec := doRequest(server, http.MethodGet, "/v1/models", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec2 := httptest.NewRecorder()
	server.Engine().ServeHTTP(rec2, req)
	assert.Equal(t, "fixed-id", rec2.Header().Get("X-Request-Id"))
}
