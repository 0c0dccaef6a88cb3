package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/infrastructure/observability"
	"imagine-server/image-api/internal/interfaces/httpserver/requests"
	"imagine-server/image-api/internal/interfaces/httpserver/responses"
	"imagine-server/image-api/internal/utils/platformerrors"
)

// ImageHandler handles image generation requests.
type ImageHandler struct {
	cfg     *config.Config
	service *generation.Service
	log     zerolog.Logger
}

func NewImageHandler(cfg *config.Config, service *generation.Service, log zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "image-handler").Logger(),
	}
}

// Generate godoc
// @Summary      Generate images
// @Description  Runs a text-to-image inference on the hosted provider. Out-of-range parameters are clamped to the model's supported range; parameters the model does not accept are dropped silently.
// @Tags         images
// @Accept       json
// @Produce      json
// @Param        request  body      requests.GenerateImageRequest  true  "Generation request"
// @Success      200      {object}  responses.GenerateImageResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      502      {object}  responses.ErrorResponse
// @Router       /v1/images/generations [post]
func (h *ImageHandler) Generate(c *gin.Context) {
	ctx, span := observability.StartSpan(c.Request.Context(), h.cfg.ServiceName, "ImageHandler.Generate")
	defer span.End()

	var req requests.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, bindingErrorMessage(err), "")
		return
	}

	observability.AddSpanAttributes(ctx,
		attribute.String("model", req.Model),
		attribute.Int("prompt_length", len(req.Prompt)),
	)

	result, err := h.service.Generate(ctx, req.ToDomain())
	if err != nil {
		observability.RecordError(ctx, err)
		responses.HandleError(c, err, "image generation failed")
		return
	}

	c.JSON(http.StatusOK, responses.BuildGenerateImageResponse(result))
}

// bindingErrorMessage turns gin binding failures into readable messages
// instead of leaking validator internals to the client.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return "invalid request: " + strings.Join(fields, ", ")
	}
	return "invalid request body: " + err.Error()
}
