package v1

import (
	"github.com/gin-gonic/gin"

	"imagine-server/image-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all v1 routes under /v1 prefix. The model detail route is
// a catch-all because registry ids contain slashes; it also serves the
// reserved "summary" id.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")
	group.GET("/models", r.handlers.Models.List)
	group.GET("/models/*model_id", r.handlers.Models.Get)
	group.POST("/images/generations", r.handlers.Images.Generate)
}
