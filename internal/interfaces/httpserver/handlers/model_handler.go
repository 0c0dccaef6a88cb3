package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/interfaces/httpserver/responses"
	"imagine-server/image-api/internal/utils/platformerrors"
)

// ModelHandler exposes the model capability registry.
type ModelHandler struct {
	cfg     *config.Config
	service *catalog.Service
	log     zerolog.Logger
}

func NewModelHandler(cfg *config.Config, service *catalog.Service, log zerolog.Logger) *ModelHandler {
	return &ModelHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "model-handler").Logger(),
	}
}

// List godoc
// @Summary      List models
// @Description  Lists registered text-to-image models with their capabilities. Filters are mutually exclusive with precedence search > category > tag.
// @Tags         models
// @Produce      json
// @Param        search    query  string  false  "Case-insensitive substring match over name, description and tags"
// @Param        category  query  string  false  "Exact category match"
// @Param        tag       query  string  false  "Exact tag match"
// @Param        ui        query  bool    false  "Return the trimmed frontend listing"
// @Success      200  {object}  responses.ModelListResponse
// @Router       /v1/models [get]
func (h *ModelHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("ui") == "true" {
		c.JSON(http.StatusOK, responses.BuildUIModelListResponse(h.service.UISummaries(ctx)))
		return
	}

	var specs []catalog.ModelSpec
	switch {
	case c.Query("search") != "":
		specs = h.service.SearchModels(ctx, c.Query("search"))
	case c.Query("category") != "":
		specs = h.service.ModelsByCategory(ctx, c.Query("category"))
	case c.Query("tag") != "":
		specs = h.service.ModelsByTag(ctx, c.Query("tag"))
	default:
		specs = h.service.ListModels(ctx)
	}

	c.JSON(http.StatusOK, responses.BuildModelListResponse(specs))
}

// Get godoc
// @Summary      Get model
// @Description  Returns the capability spec for one model. Model ids contain slashes, so the id is matched as a wildcard. The reserved id "summary" returns registry-wide statistics.
// @Tags         models
// @Produce      json
// @Param        model_id  path   string  true   "Model id, e.g. black-forest-labs/FLUX.1-dev"
// @Param        view      query  string  false  "Set to \"defaults\" to return only the generation defaults"
// @Success      200  {object}  catalog.ModelSpec
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v1/models/{model_id} [get]
func (h *ModelHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	// Registered as a catch-all because model ids contain slashes.
	modelID := strings.TrimPrefix(c.Param("model_id"), "/")
	if modelID == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "model id is required", "")
		return
	}

	// gin cannot mix a static /models/summary route with the catch-all, so the
	// reserved id is dispatched here.
	if modelID == "summary" {
		c.JSON(http.StatusOK, h.service.Summary(ctx))
		return
	}

	if c.Query("view") == "defaults" {
		defaults, err := h.service.Defaults(ctx, modelID)
		if err != nil {
			responses.HandleError(c, err, "failed to load model defaults")
			return
		}
		c.JSON(http.StatusOK, responses.ModelDefaultsResponse{ID: modelID, Defaults: defaults})
		return
	}

	spec, err := h.service.GetModel(ctx, modelID)
	if err != nil {
		responses.HandleError(c, err, "model not found")
		return
	}
	c.JSON(http.StatusOK, spec)
}
