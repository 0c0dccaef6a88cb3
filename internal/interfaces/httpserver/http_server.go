package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/singleflight"

	imageapidocs "imagine-server/image-api/docs/swagger"
	"imagine-server/image-api/internal/config"
	"imagine-server/image-api/internal/domain/catalog"
	"imagine-server/image-api/internal/domain/generation"
	"imagine-server/image-api/internal/interfaces/httpserver/handlers"
	"imagine-server/image-api/internal/interfaces/httpserver/middlewares"
	v1 "imagine-server/image-api/internal/interfaces/httpserver/routes/v1"
)

// readyProbeTimeout bounds the provider reachability check on /readyz.
const readyProbeTimeout = 5 * time.Second

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg        *config.Config
	engine     *gin.Engine
	log        zerolog.Logger
	generation *generation.Service

	// probes collapses concurrent readiness checks into one provider call.
	probes singleflight.Group
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, catalogService *catalog.Service, generationService *generation.Service) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	imageapidocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.TracingMiddleware(cfg.ServiceName),
		middlewares.LoggingMiddleware(log),
		middlewares.MetricsMiddleware(),
		middlewares.CORSMiddleware(),
	)

	handlerProvider := handlers.NewProvider(cfg, catalogService, generationService, log)
	routeProvider := v1.NewRoutes(handlerProvider)

	server := &HttpServer{
		cfg:        cfg,
		engine:     engine,
		log:        log,
		generation: generationService,
	}
	server.registerCoreRoutes(routeProvider)

	return server
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *HttpServer) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("image-api HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *HttpServer) registerCoreRoutes(routes *v1.Routes) {
	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": s.cfg.ServiceName, "status": "ok"})
	})
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	s.engine.GET("/readyz", func(c *gin.Context) {
		_, err, _ := s.probes.Do("provider", func() (any, error) {
			probeCtx, cancel := context.WithTimeout(c.Request.Context(), readyProbeTimeout)
			defer cancel()
			return nil, s.generation.Ready(probeCtx)
		})
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "provider unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(s.engine.Group("/"))
}
